package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/teslo-shop/catalog-api/internal/interface/http"
)

// FilesModule wires the product-image upload and lookup endpoints.
type FilesModule struct {
	Handler *handlers.FileHandler
	Auth    gin.HandlerFunc
}

func NewFilesModule(h *handlers.FileHandler, auth gin.HandlerFunc) *FilesModule {
	return &FilesModule{Handler: h, Auth: auth}
}

func (m *FilesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/files/product/:imageName", m.Handler.GetProductImage)
	rg.POST("/files/product", m.Auth, m.Handler.UploadProductImage)
}
