// Package controller provides the HTTP request handlers of the clubsite API.
// Controllers register their own route groups, bind and validate payloads, and
// delegate everything else to the service layer.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/entity"
)

// respondError maps a service-layer error onto its HTTP status. Anything not
// in the taxonomy is a 500 whose details are logged but never sent out.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		entity.JSONError(c, http.StatusBadRequest, errMessage(err))
	case errors.Is(err, common.ErrUnauthenticated):
		entity.JSONError(c, http.StatusUnauthorized, errMessage(err))
	case errors.Is(err, common.ErrForbidden):
		entity.JSONError(c, http.StatusForbidden, errMessage(err))
	case errors.Is(err, common.ErrNotFound):
		entity.JSONError(c, http.StatusNotFound, errMessage(err))
	case errors.Is(err, common.ErrConflict):
		entity.JSONError(c, http.StatusConflict, errMessage(err))
	default:
		logger.Error("internal error:", err)
		entity.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func errMessage(err error) string {
	return err.Error()
}

// errBadBody wraps a JSON binding failure as a validation error without
// leaking the decoder's internals to the client.
func errBadBody(err error) error {
	logger.Debug("bad request body:", err)
	return common.ValidationErrorf("invalid request body")
}

// paramId parses the :id route parameter.
func paramId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		entity.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func jsonCreated(c *gin.Context, msg string, insertId int) {
	c.JSON(http.StatusCreated, entity.MessageBody{Message: msg, InsertId: insertId})
}

func jsonMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.MessageBody{Message: msg})
}
