package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type WorkController struct {
	svc service.WorkService
}

func NewWorkController(api *gin.RouterGroup) *WorkController {
	w := &WorkController{}

	g := api.Group("/works")
	{
		g.GET("", middleware.AuthOptional(), w.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceWorks, policy.OpCreate), w.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceWorks, policy.OpUpdate), w.update)
		g.PUT("/:id/featured", middleware.Auth(), middleware.RequirePermission(policy.ResourceWorks, policy.OpReview), w.setFeatured)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceWorks, policy.OpDelete), w.delete)
	}
	return w
}

type workReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"image_url"`
	Link        string `json:"link"`
	Club        string `json:"club"`
	Featured    *bool  `json:"featured"`
}

func (w *WorkController) list(c *gin.Context) {
	var ident *policy.Identity
	if identity, ok := middleware.GetIdentity(c); ok {
		ident = &identity
	}
	var featured *bool
	if raw, exists := c.GetQuery("featured"); exists {
		val, err := strconv.ParseBool(raw)
		if err == nil {
			featured = &val
		}
	}
	works, err := w.svc.List(ident, c.Query("club"), featured)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, works)
}

func (w *WorkController) create(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req workReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	featured := req.Featured != nil && *req.Featured
	work, err := w.svc.Create(identity, req.Title, req.Description, req.ImageUrl, req.Link, req.Club, featured)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "work created successfully", work.Id)
}

func (w *WorkController) update(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req workReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := w.svc.Update(identity, id, req.Title, req.Description, req.ImageUrl, req.Link, req.Club, req.Featured); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "work updated successfully")
}

func (w *WorkController) setFeatured(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := w.svc.SetFeatured(id, req.Featured); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "work updated successfully")
}

func (w *WorkController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := w.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "work deleted successfully")
}
