package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/teslo-shop/catalog-api/internal/interface/http"
)

// SeedModule exposes the reseed flow. Public, like the rest of the demo
// data tooling; the bulk wipe behind it is never routed on its own.
type SeedModule struct {
	Handler *handlers.SeedHandler
}

func NewSeedModule(h *handlers.SeedHandler) *SeedModule {
	return &SeedModule{Handler: h}
}

func (m *SeedModule) Register(rg *gin.RouterGroup) {
	rg.GET("/seed", m.Handler.Run)
}
