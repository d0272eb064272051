package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/config"
	"github.com/starterkit/render-starter/internal/middleware"
)

// AppInfo identifies the running service
type AppInfo struct {
	Name    string
	Version string
}

// APIHandler handles the informational and diagnostic endpoints
type APIHandler struct {
	info AppInfo
	cfg  *config.Config
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(info AppInfo, cfg *config.Config) *APIHandler {
	return &APIHandler{info: info, cfg: cfg}
}

// ErrDeliberate is raised by GET /api/v1/error
var ErrDeliberate = errors.New("this is a deliberate error for testing the error handler")

// Root handles GET /
// @Summary Service banner and endpoint index
// @Tags api
// @Produce json
// @Success 200 {object} common.Response
// @Router / [get]
func (h *APIHandler) Root(c *gin.Context) {
	common.Success(c, gin.H{
		"message":     "Welcome to " + h.info.Name,
		"version":     h.info.Version,
		"environment": h.cfg.Env,
		"endpoints": gin.H{
			"health":   "/health",
			"liveness": "/health/live",
			"ready":    "/health/ready",
			"detailed": "/health/detailed",
			"api":      "/api/v1",
		},
	})
}

// Index handles GET /api/v1
// @Summary v1 endpoint list
// @Tags api
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/v1 [get]
func (h *APIHandler) Index(c *gin.Context) {
	common.Success(c, gin.H{
		"name":    h.info.Name,
		"version": "v1",
		"endpoints": []gin.H{
			{"method": "GET", "path": "/api/v1/items", "description": "List sample items"},
			{"method": "GET", "path": "/api/v1/items/:id", "description": "Get a sample item by id"},
			{"method": "POST", "path": "/api/v1/echo", "description": "Echo the request back"},
			{"method": "GET", "path": "/api/v1/config", "description": "Show non-secret configuration (not in production)"},
			{"method": "GET", "path": "/api/v1/error", "description": "Trigger the error handler"},
		},
	})
}

// Echo handles POST /api/v1/echo
// @Summary Echo the request
// @Tags api
// @Accept json
// @Produce json
// @Param body body object false "Any JSON value"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.Response
// @Failure 413 {object} common.Response
// @Router /api/v1/echo [post]
func (h *APIHandler) Echo(c *gin.Context) {
	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.GetHeader(name)
	}
	query := make(map[string]interface{}, len(c.Request.URL.Query()))
	for key, values := range c.Request.URL.Query() {
		if len(values) == 1 {
			query[key] = values[0]
		} else {
			query[key] = values
		}
	}

	common.Success(c, gin.H{
		"received": gin.H{
			"method":  c.Request.Method,
			"body":    middleware.GetBody(c),
			"query":   query,
			"headers": headers,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Config handles GET /api/v1/config
// Forbidden in production
// @Summary Non-secret configuration
// @Tags api
// @Produce json
// @Success 200 {object} common.Response
// @Failure 403 {object} common.Response
// @Router /api/v1/config [get]
func (h *APIHandler) Config(c *gin.Context) {
	if h.cfg.IsProduction() {
		_ = c.Error(common.Forbidden("Config endpoint is disabled in production"))
		return
	}
	common.Success(c, gin.H{
		"environment":    h.cfg.Env,
		"port":           h.cfg.Server.Port,
		"cors_origin":    h.cfg.CORS.Origin,
		"log_level":      h.cfg.Log.Level,
		"enable_metrics": h.cfg.Features.Metrics,
		"database":       h.cfg.Database.URL != "",
		"redis":          h.cfg.Redis.URL != "",
	})
}

// Error handles GET /api/v1/error
// @Summary Trigger the error handler
// @Tags api
// @Produce json
// @Failure 500 {object} common.Response
// @Router /api/v1/error [get]
func (h *APIHandler) Error(c *gin.Context) {
	_ = c.Error(common.NewAppError(http.StatusInternalServerError, "This is a test error", ErrDeliberate))
}

// NotFound answers unmatched routes
func (h *APIHandler) NotFound(c *gin.Context) {
	_ = c.Error(common.NotFound("Route " + c.Request.Method + " " + c.Request.URL.Path + " not found"))
}
