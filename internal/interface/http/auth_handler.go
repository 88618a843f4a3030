package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/application"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/internal/interface/middleware"
	"github.com/teslo-shop/catalog-api/pkg/helpers"
	"github.com/teslo-shop/catalog-api/pkg/mailer"
	"github.com/teslo-shop/catalog-api/pkg/response"
	"github.com/teslo-shop/catalog-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Pub: pub}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	FullName string `json:"fullName" binding:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		var dup *repo.DuplicateError
		if errors.As(err, &dup) {
			resp := response.Error[any](c, http.StatusBadRequest, dup.Detail, nil)
			c.JSON(resp.Status, resp)
			return
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "please check server logs", nil)
		c.JSON(resp.Status, resp)
		return
	}

	// Fire-and-forget welcome mail; registration never fails on it.
	if h.Pub != nil {
		if pErr := h.Pub.PublishJSON(c.Request.Context(), mailer.WelcomeJob(u.Email, u.FullName)); pErr != nil {
			h.Logger.WithError(pErr).Warn("welcome email publish failed")
		}
	}

	resp := response.Success(c, http.StatusCreated, gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"fullName": u.FullName,
		"roles":    u.Roles,
		"token":    token,
	}, "user registered", nil)
	c.JSON(resp.Status, resp)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		if errors.Is(err, application.ErrInvalidCredentials) {
			resp := response.Error[any](c, http.StatusUnauthorized, "credentials are not valid", nil)
			c.JSON(resp.Status, resp)
			return
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "please check server logs", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"token": token,
	}, "login successful", nil)
	c.JSON(resp.Status, resp)
}

// CheckAuthStatus GET /api/auth/check-auth-status (authenticated)
// Re-mints a token for the admitted caller, no credential re-check.
func (h *AuthHandler) CheckAuthStatus(c *gin.Context) {
	u := middleware.CurrentUser(c)
	refreshed, token, err := h.Svc.CheckStatus(u)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "could not refresh token", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{
		"id":       refreshed.ID,
		"email":    refreshed.Email,
		"fullName": refreshed.FullName,
		"roles":    refreshed.Roles,
		"token":    token,
	}, "token refreshed", nil)
	c.JSON(resp.Status, resp)
}

// Private GET /api/auth/private (authenticated)
// Returns the admitted user plus raw request headers.
func (h *AuthHandler) Private(c *gin.Context) {
	u := middleware.CurrentUser(c)
	resp := response.Success(c, http.StatusOK, gin.H{
		"user":       u.Sanitized(),
		"userEmail":  u.Email,
		"rawHeaders": middleware.RawHeaders(c),
	}, "private route", nil)
	c.JSON(resp.Status, resp)
}
