// Package root serves the entry point of the API.
package root

import (
	"net/http"

	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links to the endpoints that do not need authentication, and to the v1 API
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Database and ledger health
	Version string `json:"version" example:"https://example.com/api/version"`      // Version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // The v1 API, requires a bearer token
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))
	link := func(path string) string { return base + path }

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    link("/docs/index.html"),
			Healthz: link("/healthz"),
			Version: link("/version"),
			Metrics: link("/metrics"),
			V1:      link("/v1"),
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
