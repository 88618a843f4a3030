package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/application"
	"github.com/teslo-shop/catalog-api/pkg/response"
)

type FileHandler struct {
	Svc    *application.FileService
	Logger *logrus.Logger
}

func NewFileHandler(svc *application.FileService, logger *logrus.Logger) *FileHandler {
	return &FileHandler{Svc: svc, Logger: logger}
}

// UploadProductImage POST /api/files/product (authenticated, multipart)
func (h *FileHandler) UploadProductImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "make sure that file is an image", nil)
		c.JSON(resp.Status, resp)
		return
	}

	f, err := fh.Open()
	if err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "could not read uploaded file", nil)
		c.JSON(resp.Status, resp)
		return
	}
	defer func() { _ = f.Close() }()

	secureURL, err := h.Svc.UploadProductImage(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUnsupportedFile) {
			resp := response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("product image upload failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusCreated, gin.H{"secureUrl": secureURL}, "file uploaded", nil)
	c.JSON(resp.Status, resp)
}

// GetProductImage GET /api/files/product/:imageName (public)
// Redirects to the stable public object URL.
func (h *FileHandler) GetProductImage(c *gin.Context) {
	imageName := c.Param("imageName")
	c.Redirect(http.StatusFound, h.Svc.ProductImageURL(imageName))
}
