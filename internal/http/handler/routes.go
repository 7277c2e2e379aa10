package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"restaurantapi/internal/asset"
	"restaurantapi/internal/service"
)

// Deps carries everything the routes need.
type Deps struct {
	DB     *sql.DB
	Foods  service.FoodService
	Auth   service.AuthService
	Assets *asset.Store
	// UploadDir, when set, is served directly as static files under
	// /uploads. Otherwise uploads are streamed through Assets.
	UploadDir string
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	if d.DB != nil {
		app.Get("/health", HealthCheck(d.DB))
	}
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/foods", ListFoods(d.Foods, log))
	api.Post("/foods", CreateFood(d.Foods, log))
	api.Put("/foods/:id", UpdateFood(d.Foods, log))
	api.Delete("/foods/:id", DeleteFood(d.Foods, log))
	api.Post("/login", Login(d.Auth, log))

	switch {
	case d.UploadDir != "":
		app.Static(asset.URLPrefix, d.UploadDir)
	case d.Assets != nil:
		app.Get(asset.URLPrefix+"/:filename", ServeUpload(d.Assets, log))
	}
}
