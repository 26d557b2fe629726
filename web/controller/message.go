package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type MessageController struct {
	svc     service.MessageService
	captcha *service.CaptchaService
}

func NewMessageController(api *gin.RouterGroup) *MessageController {
	m := &MessageController{captcha: service.NewCaptchaService()}

	g := api.Group("/messages")
	{
		g.GET("", m.listApproved)
		g.POST("", m.createPublic)

		g.GET("/all", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpListAll), m.listAll)
		g.POST("/add", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpCreate), m.createDirect)
		g.POST("/import", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpImport), m.importAll)
		g.PUT("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpUpdate), m.update)
		g.PUT("/:id/status", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpReview), m.updateStatus)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceMessages, policy.OpDelete), m.delete)
	}
	return m
}

type messageReq struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	QQ      string `json:"qq"`
	Captcha string `json:"captcha"`
}

func (m *MessageController) listApproved(c *gin.Context) {
	messages, err := m.svc.ListApproved()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (m *MessageController) listAll(c *gin.Context) {
	messages, err := m.svc.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (m *MessageController) createPublic(c *gin.Context) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := m.captcha.Verify(req.Captcha); err != nil {
		respondError(c, err)
		return
	}
	msg, err := m.svc.CreatePublic(req.Author, req.Content, req.QQ)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "message submitted successfully", msg.Id)
}

func (m *MessageController) createDirect(c *gin.Context) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	msg, err := m.svc.CreateDirect(req.Author, req.Content, req.QQ)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "message created successfully", msg.Id)
}

// importAll replaces the whole message board with the uploaded JSON array.
func (m *MessageController) importAll(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, 4<<20))
	if err != nil {
		respondError(c, errBadBody(err))
		return
	}
	count, err := m.svc.Import(data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "messages imported successfully", "count": count})
}

func (m *MessageController) update(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := m.svc.Update(id, req.Author, req.Content, req.QQ); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "message updated successfully")
}

func (m *MessageController) updateStatus(c *gin.Context) {
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
	if err := m.svc.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "message status updated successfully")
}

func (m *MessageController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := m.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "message deleted successfully")
}
