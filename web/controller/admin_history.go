package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type AdminHistoryController struct {
	svc service.AdminHistoryService
}

func NewAdminHistoryController(api *gin.RouterGroup) *AdminHistoryController {
	a := &AdminHistoryController{}

	g := api.Group("/admin-history")
	{
		g.GET("", a.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceAdminHistory, policy.OpCreate), a.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceAdminHistory, policy.OpUpdate), a.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceAdminHistory, policy.OpDelete), a.delete)
	}
	return a
}

type adminTermReq struct {
	Title       string `json:"title"`
	Term        string `json:"term"`
	Description string `json:"description"`
	Members     []struct {
		Name     string `json:"name"`
		Position string `json:"position"`
		Image    string `json:"image"`
	} `json:"members"`
}

// memberRows keeps the distinction between an omitted members field (nil,
// rejected downstream) and an explicitly empty list.
func (r *adminTermReq) memberRows() []model.AdminTermMember {
	if r.Members == nil {
		return nil
	}
	rows := make([]model.AdminTermMember, 0, len(r.Members))
	for _, m := range r.Members {
		rows = append(rows, model.AdminTermMember{Name: m.Name, Position: m.Position, Image: m.Image})
	}
	return rows
}

func (a *AdminHistoryController) list(c *gin.Context) {
	terms, err := a.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

func (a *AdminHistoryController) create(c *gin.Context) {
	var req adminTermReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	term, err := a.svc.Create(req.Title, req.Term, req.Description, req.memberRows())
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "admin term created successfully", term.Id)
}

func (a *AdminHistoryController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req adminTermReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := a.svc.Update(id, req.Title, req.Term, req.Description, req.memberRows()); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "admin term updated successfully")
}

func (a *AdminHistoryController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := a.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "admin term deleted successfully")
}
