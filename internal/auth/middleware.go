package auth

import (
	"net/http"
	"strings"

	"github.com/fundledger/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type contextKey string

const (
	contextClaims contextKey = "fl-claims"
)

type httpError struct {
	Error string `json:"error"`
}

// Authenticate verifies the bearer token of the request and aborts with
// HTTP 401 if it is missing or invalid.
func Authenticate(tokens Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		// OPTIONS requests only announce allowed methods
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		var tokenStr string
		header := c.GetHeader("Authorization")
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenMissing.Error()})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Authenticate")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenInvalid.Error()})
			return
		}

		c.Set(string(contextClaims), claims)
		c.Next()
	}
}

// RequireRole aborts with HTTP 403 unless the authenticated caller has one
// of the roles.
//
// It must run after Authenticate.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := FromContext(c)
		if !ok || !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, httpError{Error: models.ErrPermissionDenied.Error()})
			return
		}

		c.Next()
	}
}

// FromContext returns the claims of the authenticated caller.
func FromContext(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(string(contextClaims))
	if !ok {
		return Claims{}, false
	}

	claims, ok := v.(Claims)
	return claims, ok
}

// Subject returns the subject of the authenticated caller, or an
// empty string.
func Subject(c *gin.Context) string {
	claims, _ := FromContext(c)
	return claims.Subject
}
