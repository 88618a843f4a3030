package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/application"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/internal/interface/middleware"
	"github.com/teslo-shop/catalog-api/pkg/response"
	"github.com/teslo-shop/catalog-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Title       string   `json:"title" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"omitempty,gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" binding:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" binding:"required,min=1"`
	Gender      string   `json:"gender" binding:"required,gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" binding:"omitempty,dive,min=1"`
}

// updateProductRequest uses pointers so an omitted field is distinguishable
// from a zero value. Images nil means "leave the collection alone"; an
// empty list removes every image.
type updateProductRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug" binding:"omitempty,min=1"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" binding:"omitempty,min=1"`
	Gender      *string  `json:"gender" binding:"omitempty,gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// Create POST /api/products (authenticated)
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	owner := middleware.CurrentUser(c)
	p, err := h.Svc.Create(c.Request.Context(), application.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	}, owner)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp := response.Success(c, http.StatusCreated, p, "product created", nil)
	c.JSON(resp.Status, resp)
}

// FindAll GET /api/products?limit=&offset= (public)
func (h *ProductHandler) FindAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	products, err := h.Svc.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, products, "products", gin.H{
		"limit":  limit,
		"offset": offset,
	})
	c.JSON(resp.Status, resp)
}

// FindOne GET /api/products/:term (public) — term is an id, title, or slug.
func (h *ProductHandler) FindOne(c *gin.Context) {
	term := c.Param("term")
	p, err := h.Svc.FindOnePlain(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "product with term "+term+" not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.writeError(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, p, "product", nil)
	c.JSON(resp.Status, resp)
}

// Update PATCH /api/products/:id (authenticated)
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	actingUser := middleware.CurrentUser(c)
	p, err := h.Svc.Update(c.Request.Context(), id, repo.ProductPatch{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	}, actingUser)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "product with id "+id+" not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.writeError(c, err)
		return
	}
	resp := response.Success(c, http.StatusOK, p, "product updated", nil)
	c.JSON(resp.Status, resp)
}

// Remove DELETE /api/products/:id (admin or super-user)
func (h *ProductHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "product with id "+id+" not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.writeError(c, err)
		return
	}
	resp := response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "product removed", nil)
	c.JSON(resp.Status, resp)
}

func (h *ProductHandler) writeError(c *gin.Context, err error) {
	var dup *repo.DuplicateError
	if errors.As(err, &dup) {
		resp := response.Error[any](c, http.StatusBadRequest, dup.Detail, nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Error[any](c, http.StatusInternalServerError, "unexpected error, check server logs", nil)
	c.JSON(resp.Status, resp)
}
