// Package entity defines the JSON payload shapes shared by the clubsite API.
package entity

import "github.com/gin-gonic/gin"

// ErrorBody is the stable error payload: a machine-readable message, nothing
// internal ever leaks through it.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody acknowledges a successful mutation.
type MessageBody struct {
	Message  string `json:"message"`
	InsertId int    `json:"insertId,omitempty"`
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Paginated wraps a page of rows with its pagination descriptor.
type Paginated struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ImportRowResult reports the outcome of one row of a bulk import.
type ImportRowResult struct {
	Row      int    `json:"row"`
	Username string `json:"username,omitempty"`
	Outcome  string `json:"outcome"`
}

// JSONError writes an error payload with the given status.
func JSONError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}
