package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type FriendLinkController struct {
	svc service.FriendLinkService
}

func NewFriendLinkController(api *gin.RouterGroup) *FriendLinkController {
	f := &FriendLinkController{}

	g := api.Group("/friend-links")
	{
		g.GET("", f.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceFriendLinks, policy.OpCreate), f.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceFriendLinks, policy.OpUpdate), f.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceFriendLinks, policy.OpDelete), f.delete)
	}
	return f
}

type friendLinkReq struct {
	Title string `json:"title"`
	Url   string `json:"url"`
	Logo  string `json:"logo"`
}

func (f *FriendLinkController) list(c *gin.Context) {
	links, err := f.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (f *FriendLinkController) create(c *gin.Context) {
	var req friendLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	link, err := f.svc.Create(req.Title, req.Url, req.Logo)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "friend link created successfully", link.Id)
}

func (f *FriendLinkController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req friendLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := f.svc.Update(id, req.Title, req.Url, req.Logo); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "friend link updated successfully")
}

func (f *FriendLinkController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := f.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "friend link deleted successfully")
}
