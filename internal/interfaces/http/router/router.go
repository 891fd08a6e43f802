package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supertienda/storefront/internal/interfaces/http/dto"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	Register(api *gin.RouterGroup, auth gin.HandlerFunc)
}

// Router assembles the HTTP route tree
type Router struct {
	engine     *gin.Engine
	auth       gin.HandlerFunc
	registrars []RouteRegistrar
}

// New creates a router. The auth middleware guards every route a
// registrar mounts under its admin group.
func New(engine *gin.Engine, auth gin.HandlerFunc) *Router {
	return &Router{
		engine: engine,
		auth:   auth,
	}
}

// Register adds route registrars
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.registrars = append(r.registrars, registrars...)
}

// Setup mounts all registered routes under /api
func (r *Router) Setup() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	api := r.engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.Register(api, r.auth)
	}
}
