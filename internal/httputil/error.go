package httputil

import (
	"github.com/gin-gonic/gin"
)

// NewError aborts the request with the status and a JSON body
// containing the error message.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
