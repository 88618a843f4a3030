package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
)

// ProductService orchestrates the product aggregate store and flattens
// aggregates into the plain projection the API returns.
type ProductService struct {
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewProductService(products repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Products: products, Logger: logger}
}

// PlainProduct is the API projection: images flattened to URL strings.
type PlainProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	OwnerID     string   `json:"user_id,omitempty"`
}

func toPlain(p *entity.Product) *PlainProduct {
	out := &PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      p.ImageURLs(),
	}
	if p.Owner != nil {
		out.OwnerID = p.Owner.ID
	}
	return out
}

type CreateProductInput struct {
	Title       string
	Price       float64
	Description string
	Slug        string
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// Create builds the aggregate from scalar fields plus one owned image per
// URL, attaches the owner, and persists it all in one write.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput, owner *entity.User) (*PlainProduct, error) {
	p := &entity.Product{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Slug:        in.Slug,
		Stock:       in.Stock,
		Sizes:       in.Sizes,
		Gender:      in.Gender,
		Tags:        in.Tags,
		Owner:       owner,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	for _, url := range in.Images {
		p.Images = append(p.Images, entity.ProductImage{URL: url})
	}

	if err := s.Products.Create(ctx, p); err != nil {
		return nil, s.mapStorageErr("create product", err)
	}
	return toPlain(p), nil
}

func (s *ProductService) FindAll(ctx context.Context, limit, offset int) ([]*PlainProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	products, err := s.Products.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, s.mapStorageErr("list products", err)
	}
	out := make([]*PlainProduct, 0, len(products))
	for i := range products {
		out = append(out, toPlain(&products[i]))
	}
	return out, nil
}

// FindOnePlain resolves a term (id, title, or slug) to the plain projection.
func (s *ProductService) FindOnePlain(ctx context.Context, term string) (*PlainProduct, error) {
	p, err := s.Products.FindByTerm(ctx, term)
	if err != nil {
		return nil, s.mapStorageErr("find product", err)
	}
	return toPlain(p), nil
}

// Update applies a partial update through the repository's transactional
// protocol and returns the committed aggregate.
func (s *ProductService) Update(ctx context.Context, id string, patch repo.ProductPatch, actingUser *entity.User) (*PlainProduct, error) {
	p, err := s.Products.Update(ctx, id, patch, actingUser)
	if err != nil {
		return nil, s.mapStorageErr("update product", err)
	}
	return toPlain(p), nil
}

func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.Products.Remove(ctx, id); err != nil {
		return s.mapStorageErr("remove product", err)
	}
	return nil
}

// DeleteAll backs the reseed flow only; it is never routed as general API.
func (s *ProductService) DeleteAll(ctx context.Context) error {
	if err := s.Products.DeleteAll(ctx); err != nil {
		return s.mapStorageErr("delete all products", err)
	}
	return nil
}

// mapStorageErr logs unexpected storage failures and passes the mapped
// taxonomy (not found, duplicate) through untouched.
func (s *ProductService) mapStorageErr(op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) || repo.IsDuplicate(err) {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithError(err).Error(op + " failed")
	}
	return err
}
