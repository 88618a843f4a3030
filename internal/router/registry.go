package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiBasePath = "/api"

// Registry collects feature modules and mounts them all under the API base
// path in one pass, so route declaration stays in the modules and startup
// order stays in main.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	reg := &Registry{Engine: engine, API: engine.Group(apiBasePath)}
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return reg
}

// Use queues middleware applied to the whole API group ahead of every module.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts the queued middleware, then every module, in the order
// they were added.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
