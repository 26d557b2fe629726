package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type FameMemberController struct {
	svc service.FameMemberService
}

func NewFameMemberController(api *gin.RouterGroup) *FameMemberController {
	f := &FameMemberController{}

	g := api.Group("/fame-members")
	{
		g.GET("", f.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceFameMembers, policy.OpCreate), f.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceFameMembers, policy.OpUpdate), f.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceFameMembers, policy.OpDelete), f.delete)
	}
	return f
}

type fameMemberReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (f *FameMemberController) list(c *gin.Context) {
	members, err := f.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (f *FameMemberController) create(c *gin.Context) {
	var req fameMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	member, err := f.svc.Create(req.Name, req.Description, req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "fame member created successfully", member.Id)
}

func (f *FameMemberController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req fameMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := f.svc.Update(id, req.Name, req.Description, req.Image); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "fame member updated successfully")
}

func (f *FameMemberController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := f.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "fame member deleted successfully")
}
