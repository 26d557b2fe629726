package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/entity"
	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type MemberController struct {
	svc service.MemberService
}

func NewMemberController(api *gin.RouterGroup) *MemberController {
	m := &MemberController{}

	g := api.Group("/members")
	{
		g.GET("", m.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceMembers, policy.OpCreate), m.create)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceMembers, policy.OpUpdate), m.update)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceMembers, policy.OpDelete), m.delete)
	}
	return m
}

type memberReq struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	Link string `json:"link"`
}

func (m *MemberController) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	members, pagination, err := m.svc.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.Paginated{Data: members, Pagination: pagination})
}

func (m *MemberController) create(c *gin.Context) {
	var req memberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	member, err := m.svc.Create(req.Name, req.Logo, req.Link)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "member created successfully", member.Id)
}

func (m *MemberController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req memberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := m.svc.Update(id, req.Name, req.Logo, req.Link); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "member updated successfully")
}

func (m *MemberController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := m.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "member deleted successfully")
}
