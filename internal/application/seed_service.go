package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/pkg/helpers"
)

// SeedService wipes and repopulates the catalog. Products go first so the
// user bulk-delete never trips the ownership foreign key.
type SeedService struct {
	Users    repo.UserRepository
	Products *ProductService
	Logger   *logrus.Logger
}

func NewSeedService(users repo.UserRepository, products *ProductService, logger *logrus.Logger) *SeedService {
	return &SeedService{Users: users, Products: products, Logger: logger}
}

// Run executes the full reseed: delete products, delete users, insert seed
// users, insert seed products owned by the first seed user.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.Products.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.Users.DeleteAll(ctx); err != nil {
		return err
	}

	first, err := s.insertUsers(ctx)
	if err != nil {
		return err
	}

	for _, in := range seedProducts {
		if _, err := s.Products.Create(ctx, in, first); err != nil {
			return err
		}
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"users":    len(seedUsers),
			"products": len(seedProducts),
		}).Info("seed executed")
	}
	return nil
}

func (s *SeedService) insertUsers(ctx context.Context) (*entity.User, error) {
	var first *entity.User
	for _, su := range seedUsers {
		digest, err := helpers.HashPassword(su.Password)
		if err != nil {
			return nil, err
		}
		u := &entity.User{
			Email:    su.Email,
			Password: digest,
			FullName: su.FullName,
			Roles:    su.Roles,
		}
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, err
		}
		if first == nil {
			first = u
		}
	}
	return first, nil
}
