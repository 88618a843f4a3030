package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/application"
	"github.com/teslo-shop/catalog-api/pkg/response"
)

type SeedHandler struct {
	Svc    *application.SeedService
	Logger *logrus.Logger
}

func NewSeedHandler(svc *application.SeedService, logger *logrus.Logger) *SeedHandler {
	return &SeedHandler{Svc: svc, Logger: logger}
}

// Run GET /api/seed — wipes and repopulates users and products.
func (h *SeedHandler) Run(c *gin.Context) {
	if err := h.Svc.Run(c.Request.Context()); err != nil {
		h.Logger.WithError(err).Error("seed failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "seed failed, check server logs", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, nil, "seed executed successfully", nil)
	c.JSON(resp.Status, resp)
}
