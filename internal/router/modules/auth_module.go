package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teslo-shop/catalog-api/internal/container"
	handlers "github.com/teslo-shop/catalog-api/internal/interface/http"
	"github.com/teslo-shop/catalog-api/internal/interface/middleware"
)

// AuthModule wires the auth endpoints.
// Public: POST /api/auth/register, POST /api/auth/login (both rate limited).
// Protected: GET /api/auth/check-auth-status, GET /api/auth/private.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, auth gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(m.Auth)
	{
		auth.GET("/check-auth-status", m.Handler.CheckAuthStatus)
		auth.GET("/private", m.Handler.Private)
	}
}
