package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/config"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/http/handlers"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/http/middleware"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/notify"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/webhook"

	_ "github.com/asdfghjkl1994/Frost-Tesh/docs"
)

type Deps struct {
	Bookings    store.BookingStore
	Emergencies store.EmergencyStore
	Dispatcher  *notify.Dispatcher
	Responder   *webhook.Responder
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
	StorePinger handlers.Pinger
}

func Router(cfg config.Config, deps Deps, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id", "X-Line-Signature"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Bookings:    deps.Bookings,
		Emergencies: deps.Emergencies,
		Dispatcher:  deps.Dispatcher,
		Responder:   deps.Responder,
		Validator:   validator.New(),
		Logger:      logger,
		Metrics:     deps.Metrics,
		LineSecret:  cfg.LineSecret,
		StorePinger: deps.StorePinger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/bookings", h.BookingsList)
		api.GET("/bookings/:id", h.BookingDetails)
		api.POST("/bookings", h.BookingCreate)
		api.GET("/emergency", h.EmergencyList)
		api.POST("/emergency", h.EmergencyCreate)
		api.POST("/notify", h.Notify)
		api.POST("/line/webhook", h.LineWebhook)
		api.GET("/line/webhook", h.LineWebhookInfo)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PUT("/bookings", h.BookingUpdateStatus)
		admin.DELETE("/bookings/:id", h.BookingDelete)
		admin.GET("/bookings/export", h.BookingsExport)
		admin.PUT("/emergency", h.EmergencyUpdateStatus)
		admin.DELETE("/emergency/:id", h.EmergencyDelete)
	}

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
