package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	handlers "github.com/teslo-shop/catalog-api/internal/interface/http"
	"github.com/teslo-shop/catalog-api/internal/interface/middleware"
)

// ProductModule wires the catalog endpoints. Reads are public; mutations
// require authentication, and delete additionally requires admin or
// super-user. The required-role set is declared here, at registration
// time, and never recomputed per call.
type ProductModule struct {
	Handler *handlers.ProductHandler
	Auth    gin.HandlerFunc
}

func NewProductModule(h *handlers.ProductHandler, auth gin.HandlerFunc) *ProductModule {
	return &ProductModule{Handler: h, Auth: auth}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.FindAll)
	rg.GET("/products/:term", m.Handler.FindOne)

	auth := rg.Group("/products")
	auth.Use(m.Auth)
	{
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id",
			middleware.RequireRoles(entity.RoleAdmin, entity.RoleSuperUser),
			m.Handler.Remove)
	}
}
