package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/pkg/helpers"
	"github.com/teslo-shop/catalog-api/pkg/response"
)

const ctxUserKey = "authUser"

// Authenticate verifies the bearer token and resolves its subject to an
// active user, which it stashes in the Gin context for handlers and for
// RequireRoles. Token verification happens before any store access: a
// missing, malformed, or wrongly signed token never reaches the database.
func Authenticate(jwt *helpers.JWTManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		// A subject that is not a uuid can never match a row; deny it here
		// so a malformed id never turns into a store error.
		if _, err := uuid.Parse(claims.UserID); err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "token subject no longer exists", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "token subject no longer exists"
			if !errors.Is(err, repo.ErrNotFound) {
				status = http.StatusInternalServerError
				msg = "could not resolve token subject"
			}
			resp := response.Error[any](c, status, msg, nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		if !u.IsActive {
			// A token for a deactivated user is not honored.
			resp := response.Error[any](c, http.StatusUnauthorized, "user is inactive, talk with an admin", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRoles gates a route on role membership. The required set is fixed
// at route registration time, never recomputed per call. An empty set
// means "authenticated only". Admission needs a non-empty intersection of
// the caller's roles and the required set; there is no role hierarchy.
// Mount after Authenticate.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "user not resolved, check middleware order", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		if len(roles) == 0 || u.HasAnyRole(roles...) {
			c.Next()
			return
		}
		resp := response.Error[any](c, http.StatusForbidden, "insufficient role", gin.H{
			"required": roles,
		})
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}

// CurrentUser returns the admitted caller, or nil on public routes.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RawHeaders exposes the raw request headers as "Name: value" lines for
// handlers that want request metadata alongside the admitted user.
func RawHeaders(c *gin.Context) []string {
	out := make([]string, 0, len(c.Request.Header))
	for name, values := range c.Request.Header {
		for _, v := range values {
			out = append(out, name+": "+v)
		}
	}
	return out
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
