package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
	sharederrors "github.com/delicias-da-thai/storefront/internal/shared/errors"
)

// Handler exposes operator authentication endpoints.
type Handler struct {
	service ports.Service
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// Register mounts login/logout on the public router group.
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			sharederrors.RespondError(c, sharederrors.ErrUnauthorized.WithDetail("invalid username or password"))
			return
		}
		sharederrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) logout(c *gin.Context) {
	username, err := h.service.Authenticate(c.Request.Context(), bearerToken(c))
	if err == nil {
		h.service.Logout(c.Request.Context(), username)
	}
	c.Status(http.StatusNoContent)
}

// AuthMiddleware guards operator-only routes with a bearer token.
func AuthMiddleware(service ports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := service.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			sharederrors.RespondError(c, sharederrors.ErrUnauthorized.WithDetail("missing or expired session"))
			c.Abort()
			return
		}
		c.Set("operator", username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
