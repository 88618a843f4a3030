package router

import "github.com/gin-gonic/gin"

// Module is one feature surface (auth, products, files, seed) that mounts
// its own routes, with any per-route middleware, onto the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
