package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers an OPTIONS request with the methods an endpoint accepts.
// OPTIONS itself is always listed first.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

// OptionsGet is the OPTIONS handler for read only endpoints: reports,
// budgets and single ledger records.
func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

// OptionsPost is the OPTIONS handler for action endpoints.
func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

// OptionsGetPost is the OPTIONS handler for collections.
func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

// OptionsGetPatchDelete is the OPTIONS handler for mutable resources.
func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
