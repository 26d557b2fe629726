package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/web/middleware"
	"github.com/clubsite/server/web/policy"
	"github.com/clubsite/server/web/service"
)

type UploadController struct {
	svc service.UploadService
}

func NewUploadController(api *gin.RouterGroup) *UploadController {
	u := &UploadController{svc: service.UploadService{Root: config.GetUploadFolder()}}

	api.POST("/uploads",
		middleware.Auth(),
		middleware.RequirePermission(policy.ResourceUploads, policy.OpCreate),
		u.upload)
	return u
}

func (u *UploadController) upload(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	// The destination category arrives as a query parameter; the multipart
	// form field is accepted as a fallback.
	rawCategory := c.Query("category")
	if rawCategory == "" {
		rawCategory = c.PostForm("category")
	}
	category := u.svc.NormalizeCategory(rawCategory)
	if err := u.svc.Authorize(identity, category); err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, errBadBody(err))
		return
	}
	if err := u.svc.ValidateFile(fileHeader); err != nil {
		respondError(c, err)
		return
	}

	dst, publicPath, err := u.svc.DestPath(category, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		logger.Error("saving upload failed:", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "file uploaded successfully",
		"filePath": publicPath,
		"category": category,
	})
}
