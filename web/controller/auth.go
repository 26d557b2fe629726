package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/service"
)

type AuthController struct {
	svc service.AuthService
}

func NewAuthController(api *gin.RouterGroup) *AuthController {
	a := &AuthController{}

	g := api.Group("/auth")
	{
		g.POST("/register", a.register)
		g.POST("/login", middleware.LoginRateLimit(), a.login)
	}
	return a
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *AuthController) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := a.svc.Register(req.Username, req.Password, req.Role); err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "user registered successfully", 0)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthController) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	token, _, err := a.svc.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
