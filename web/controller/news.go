package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type NewsController struct {
	svc service.NewsService
}

func NewNewsController(api *gin.RouterGroup) *NewsController {
	n := &NewsController{}

	g := api.Group("/news")
	{
		g.GET("", middleware.AuthOptional(), n.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceNews, policy.OpCreate), n.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceNews, policy.OpUpdate), n.update)
		g.PUT("/:id/status", middleware.Auth(), middleware.RequirePermission(policy.ResourceNews, policy.OpReview), n.updateStatus)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceNews, policy.OpDelete), n.delete)
	}
	return n
}

type newsReq struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Image   string `json:"image"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

func (r *newsReq) parseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, common.ValidationErrorf("date is required")
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, common.ValidationErrorf("date must be YYYY-MM-DD")
	}
	return date, nil
}

func (n *NewsController) list(c *gin.Context) {
	var ident *policy.Identity
	if identity, ok := middleware.GetIdentity(c); ok {
		ident = &identity
	}
	news, err := n.svc.List(ident)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (n *NewsController) create(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	date, err := req.parseDate()
	if err != nil {
		respondError(c, err)
		return
	}
	news, err := n.svc.Create(identity, req.Title, date, req.Author, req.Image, req.Summary, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "news created successfully", news.Id)
}

func (n *NewsController) update(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req newsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	date, err := req.parseDate()
	if err != nil {
		respondError(c, err)
		return
	}
	if err := n.svc.Update(identity, id, req.Title, date, req.Author, req.Image, req.Summary, req.Content); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "news updated successfully")
}

func (n *NewsController) updateStatus(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := n.svc.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "news status updated successfully")
}

func (n *NewsController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := n.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "news deleted successfully")
}
