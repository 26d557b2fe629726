package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type HistoryController struct {
	svc service.HistoryService
}

func NewHistoryController(api *gin.RouterGroup) *HistoryController {
	h := &HistoryController{}

	g := api.Group("/history")
	{
		g.GET("", h.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceHistory, policy.OpCreate), h.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceHistory, policy.OpUpdate), h.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceHistory, policy.OpDelete), h.delete)
	}
	return h
}

type historyReq struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	DialogData  string `json:"dialog_data"`
}

func (h *HistoryController) list(c *gin.Context) {
	events, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *HistoryController) create(c *gin.Context) {
	var req historyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	event, err := h.svc.Create(req.Title, req.Date, req.Description, req.Image, req.Link, req.DialogData)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "history event created successfully", event.Id)
}

func (h *HistoryController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req historyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := h.svc.Update(id, req.Title, req.Date, req.Description, req.Image, req.Link, req.DialogData); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "history event updated successfully")
}

func (h *HistoryController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "history event deleted successfully")
}
