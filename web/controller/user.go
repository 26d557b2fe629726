package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type UserController struct {
	svc service.UserService
}

func NewUserController(api *gin.RouterGroup) *UserController {
	u := &UserController{}

	g := api.Group("/users")
	{
		g.GET("/me", middleware.Auth(), u.me)
		g.PUT("/me/profile", middleware.Auth(), u.updateProfile)
		g.PUT("/me/password", middleware.Auth(), u.updatePassword)

		g.GET("", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpListAll), u.list)
		g.POST("", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpCreate), u.create)
		g.POST("/import", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpImport), u.importCSV)
		g.PUT("/:id/profile", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpUpdate), u.updateUserProfile)
		g.PUT("/:id/role", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpUpdate), u.updateRole)
		g.PUT("/:id/password", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpUpdate), u.resetPassword)
		g.DELETE("/:id", middleware.Auth(), middleware.RequirePermission(policy.ResourceUsers, policy.OpDelete), u.delete)
	}
	return u
}

func (u *UserController) me(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	user, err := u.svc.GetById(identity.Id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserController) updateProfile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.UpdateNickname(identity.Id, req.Nickname); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "profile updated successfully")
}

func (u *UserController) updateUserProfile(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.UpdateNickname(id, req.Nickname); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "profile updated successfully")
}

func (u *UserController) updatePassword(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.UpdatePassword(identity.Id, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "password updated successfully")
}

func (u *UserController) list(c *gin.Context) {
	users, err := u.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (u *UserController) create(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	user, err := u.svc.Create(req.Username, req.Password, req.Role, req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}
	jsonCreated(c, "user created successfully", user.Id)
}

// importCSV bulk-creates accounts from an uploaded CSV file. Rows that fail
// are reported individually instead of aborting the whole import.
func (u *UserController) importCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, errBadBody(err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	results, err := u.svc.ImportCSV(file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (u *UserController) updateRole(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.UpdateRole(id, req.Role); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "user role updated successfully")
}

func (u *UserController) resetPassword(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var req struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.ResetPassword(id, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "password reset successfully")
}

func (u *UserController) delete(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := u.svc.Delete(id, identity.Id); err != nil {
		respondError(c, err)
		return
	}
	jsonMessage(c, "user deleted successfully")
}
