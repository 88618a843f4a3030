package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/teslo-shop/catalog-api/config"
	"github.com/teslo-shop/catalog-api/internal/application"
	pginfra "github.com/teslo-shop/catalog-api/internal/infrastructure/postgres"
	"github.com/teslo-shop/catalog-api/pkg/helpers"
)

// Reseeds the database from the command line; same flow GET /api/seed runs.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	productSvc := application.NewProductService(productRepo, logger)
	seedSvc := application.NewSeedService(userRepo, productSvc, logger)

	if err := seedSvc.Run(ctx); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Info("seed executed successfully")
}
