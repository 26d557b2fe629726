package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type AnnouncementController struct {
	svc service.AnnouncementService
}

func NewAnnouncementController(api *gin.RouterGroup) *AnnouncementController {
	a := &AnnouncementController{}

	g := api.Group("/announcements")
	{
		g.GET("/public", a.listActive)
		g.GET("", middleware.Auth(), middleware.RequirePermission(policy.ResourceAnnouncements, policy.OpListAll), a.listAll)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceAnnouncements, policy.OpCreate), a.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceAnnouncements, policy.OpUpdate), a.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceAnnouncements, policy.OpDelete), a.delete)
	}
	return a
}

type announcementReq struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	Enabled   *bool      `json:"enabled"`
	Closeable *bool      `json:"closeable"`
	StartAt   *time.Time `json:"start_at"`
	EndAt     *time.Time `json:"end_at"`
}

func (a *AnnouncementController) listActive(c *gin.Context) {
	rows, err := a.svc.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *AnnouncementController) listAll(c *gin.Context) {
	rows, err := a.svc.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *AnnouncementController) create(c *gin.Context) {
	var req announcementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	enabled := req.Enabled == nil || *req.Enabled
	closeable := req.Closeable == nil || *req.Closeable
	row, err := a.svc.Create(req.Title, req.Content, req.Type, enabled, closeable, req.StartAt, req.EndAt)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "announcement created successfully", row.Id)
}

func (a *AnnouncementController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var upd service.AnnouncementUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := a.svc.Update(id, upd); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "announcement updated successfully")
}

func (a *AnnouncementController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := a.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "announcement deleted successfully")
}
