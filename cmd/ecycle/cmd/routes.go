package cmd

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/ecycle/api/openapi"
	"github.com/donaldgifford/ecycle/internal/api/handlers"
	mw "github.com/donaldgifford/ecycle/internal/api/middleware"
	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/pkg/classify"
)

// serverDeps is everything the HTTP surface needs.
type serverDeps struct {
	engine         *engine.Engine
	classifier     classify.Classifier
	log            *slog.Logger
	version        string
	uploadDir      string
	maxUploadBytes int64
}

// newServer builds the echo server with middleware, operational endpoints,
// huma JSON operations and the multipart and HTML handlers.
func newServer(d serverDeps) (*echo.Echo, huma.API) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(d.log))
	e.Use(mw.RequestLog(d.log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(d.engine.Store(), d.version)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig("ecycle API", d.version)
	cfg.Info.Description = "E-waste valuation, pickups, bulk intake and certificates."
	api := humaecho.New(e, cfg)

	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(d.engine))
	handlers.RegisterUserRoutes(api, handlers.NewUsersHandler(d.engine))
	handlers.RegisterPickupRoutes(api, handlers.NewPickupsHandler(d.engine))
	handlers.RegisterBulkRoutes(api, handlers.NewBulkHandler(d.engine))
	handlers.RegisterRewardRoutes(api, handlers.NewRewardsHandler(d.engine))
	openapi.RegisterRoutes(e, api)

	upload := handlers.NewBulkUploadHandler(d.engine, d.maxUploadBytes)
	e.POST("/api/v1/bulk-pickups", upload.Submit)
	e.POST("/api/v1/bulk-pickups/preview", upload.Preview)

	cls := handlers.NewClassifyHandler(d.classifier,
		handlers.WithUploadDir(d.uploadDir),
		handlers.WithMaxImageBytes(d.maxUploadBytes),
		handlers.WithClassifyLogger(d.log),
	)
	e.POST("/api/v1/classify", cls.Classify)

	pages := handlers.NewCertificatePageHandler(d.engine)
	e.GET("/certificates/bulk/:id", pages.Bulk)
	e.GET("/certificates/pickups/:id", pages.Pickup)

	return e, api
}
