package router

import (
	"github.com/teslo-shop/catalog-api/internal/application"
	"github.com/teslo-shop/catalog-api/internal/container"
	pginfra "github.com/teslo-shop/catalog-api/internal/infrastructure/postgres"
	handlers "github.com/teslo-shop/catalog-api/internal/interface/http"
	"github.com/teslo-shop/catalog-api/internal/interface/middleware"
	"github.com/teslo-shop/catalog-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	productSvc := application.NewProductService(productRepo, logger)
	fileSvc := application.NewFileService(container.GetGCS(), container.GetConfig().GCSBucket)
	seedSvc := application.NewSeedService(userRepo, productSvc, logger)

	// One authenticate middleware shared by every protected route.
	auth := middleware.Authenticate(container.GetJWT(), userRepo)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, container.GetRabbitPub()), auth))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger), auth))
	r.Add(modules.NewFilesModule(handlers.NewFileHandler(fileSvc, logger), auth))
	r.Add(modules.NewSeedModule(handlers.NewSeedHandler(seedSvc, logger)))
}
