package httputil

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// WriteRateLimit throttles POST, PATCH and DELETE requests with a token
// bucket that refills with limit tokens per second up to burst.
//
// A limit of 0 disables throttling. Reads are never throttled.
func WriteRateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPatch, http.MethodDelete:
			if !limiter.Allow() {
				log.Debug().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msg("Rate limited")
				c.Header("Retry-After", "1")
				NewError(c, http.StatusTooManyRequests, ErrRateLimited)
				return
			}
		}

		c.Next()
	}
}
