// Package healthz reports whether the API can serve requests.
package healthz

import (
	"errors"
	"net/http"

	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errLedgerUnbalanced = errors.New("the sum of all debits does not equal the sum of all credits")

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Pings the database and verifies that the ledger as a whole balances
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	logger := log.With().Str("request-id", requestid.Get(c)).Logger()

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		logger.Error().Err(err).Msg("Healthz: database unreachable")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	debits, credits, err := ledger.Totals(models.DB.WithContext(c.Request.Context()))
	if err != nil {
		logger.Error().Err(err).Msg("Healthz: ledger totals")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	if !debits.Equal(credits) {
		logger.Error().Str("debits", debits.String()).Str("credits", credits.String()).Msg("Healthz: ledger unbalanced")
		httputil.NewError(c, http.StatusInternalServerError, errLedgerUnbalanced)
		return
	}

	c.Status(http.StatusNoContent)
}
