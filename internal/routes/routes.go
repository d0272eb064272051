package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/starterkit/render-starter/docs"
	"github.com/starterkit/render-starter/internal/config"
	"github.com/starterkit/render-starter/internal/handler"
	"github.com/starterkit/render-starter/internal/middleware"
	"github.com/starterkit/render-starter/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Info   handler.AppInfo
	Health *service.HealthService
	Items  service.ItemService
	// Metrics is only used when ENABLE_METRICS is set
	Metrics *prometheus.Registry
}

// NewRouter builds the engine with the middleware chain and every route
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()

	// Middleware, outermost first. ErrorHandler sits inside the logger so the
	// logged status is the one it writes, and wraps body parsing so parse
	// failures get the same envelope.
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORS.Origin))
	router.Use(middleware.RequestLogger())
	if cfg.Features.Metrics && deps.Metrics != nil {
		router.Use(middleware.Metrics(middleware.NewHTTPMetrics(deps.Metrics)))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}
	router.Use(middleware.ErrorHandler(cfg.IsDevelopment()))
	router.Use(middleware.JSONBody(middleware.DefaultBodyLimit))

	apiHandler := handler.NewAPIHandler(deps.Info, cfg)
	healthHandler := handler.NewHealthHandler(deps.Health)
	itemHandler := handler.NewItemHandler(deps.Items)

	router.GET("/", apiHandler.Root)

	// Swagger UI, not exposed in production
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health probes
	health := router.Group("/health")
	health.GET("", healthHandler.Health)
	health.GET("/live", healthHandler.Live)
	health.GET("/ready", healthHandler.Ready)
	health.GET("/detailed", healthHandler.Detailed)

	// v1 API
	v1 := router.Group("/api/v1")
	v1.GET("", apiHandler.Index)
	v1.GET("/items", itemHandler.ListItems)
	v1.GET("/items/:id", itemHandler.GetItem)
	v1.POST("/echo", apiHandler.Echo)
	v1.GET("/config", apiHandler.Config)
	v1.GET("/error", apiHandler.Error)

	router.NoRoute(apiHandler.NotFound)

	return router
}
