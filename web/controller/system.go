package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type SystemController struct {
	svc service.SystemService
}

func NewSystemController(api *gin.RouterGroup) *SystemController {
	s := &SystemController{}

	g := api.Group("/system")
	{
		g.GET("/health", s.health)
		g.GET("/info", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpListAll), s.info)
	}
	return s
}

func (s *SystemController) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *SystemController) info(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Info())
}
