package router

import (
	"net/http"

	docs "github.com/fundledger/backend/api"
	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/config"
	"github.com/fundledger/backend/internal/controllers/healthz"
	"github.com/fundledger/backend/internal/controllers/root"
	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config returns the router with all middlewares configured. The returned
// function must be called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	url := cfg.URL()

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		httputil.NewError(c, http.StatusNotFound, errNoRoute)
	})
	r.Use(requestLogger())

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")
		r.Use(corsMiddleware(cfg.CORSAllowOrigins))
	}

	err := registerMetrics()
	if err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	// Writes are throttled per client. Reads are never limited.
	r.Use(httputil.WriteRateLimit(cfg.WriteRateLimit, cfg.WriteRateBurst))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "fundledger"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "Double entry accounting and budget tracking for non-profit organizations."

	return r, unregisterMetrics, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
//
// Events about committed writes are sent to the publisher.
func AttachRoutes(cfg config.Config, publisher events.Publisher, group *gin.RouterGroup) {
	root.RegisterRoutes(group.Group(""))
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	co := v1.Controller{
		Tracker: budget.NewTracker(publisher, budget.Defaults{
			FundingIncomeAccount:    cfg.FundingIncomeAccount,
			AllocationDebitAccount:  cfg.AllocationDebitAccount,
			AllocationCreditAccount: cfg.AllocationCreditAccount,
		}),
		Publisher: publisher,
		Currency:  cfg.CurrencyUnit().String(),
	}

	api := group.Group("/v1", auth.Authenticate(tokens))
	co.RegisterRoutes(api)
}

// requestLogger logs every request with zerolog. Client errors are
// expected traffic and log at info level.
func requestLogger() gin.HandlerFunc {
	return logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("route", c.FullPath()).
				Str("path", c.Request.URL.Path).
				Str("subject", auth.Subject(c)).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Logger()
		}))
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodOptions, http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Allow", "X-Request-Id"},
		AllowCredentials: true,
	})
}
