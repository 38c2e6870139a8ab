package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/domains/catalog/application"
	"github.com/delicias-da-thai/storefront/internal/domains/catalog/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"
	sharederrors "github.com/delicias-da-thai/storefront/internal/shared/errors"
)

// Handler exposes catalog endpoints. List is public (storefront menu);
// mutations belong on the operator router group.
type Handler struct {
	service ports.Service
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts read-only catalog routes.
func (h *Handler) RegisterPublic(r gin.IRoutes) {
	r.GET("/products", h.list)
	r.GET("/products/:id", h.get)
}

// RegisterAdmin mounts operator-only catalog routes.
func (h *Handler) RegisterAdmin(r gin.IRoutes) {
	r.POST("/products", h.create)
	r.PUT("/products/:id", h.update)
	r.PATCH("/products/:id/availability", h.setAvailability)
	r.DELETE("/products/:id", h.delete)
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
	MadeToOrder bool   `json:"madeToOrder"`
}

func toResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		Category:    string(product.Category),
		ImageURL:    product.ImageURL,
		Description: product.Description,
		Available:   product.Available,
		MadeToOrder: product.MadeToOrder(),
	}
}

func (h *Handler) bindInput(c *gin.Context) (ports.ProductInput, bool) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return ports.ProductInput{}, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail("price must be a decimal string"))
		return ports.ProductInput{}, false
	}
	return ports.ProductInput{
		Name:        req.Name,
		Price:       price,
		Category:    domain.Category(req.Category),
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}, true
}

func (h *Handler) list(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toResponse(product))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) get(c *gin.Context) {
	product, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(product))
}

func (h *Handler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	product, err := h.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(product))
}

func (h *Handler) update(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}
	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(product))
}

func (h *Handler) setAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	product, err := h.service.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(product))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		sharederrors.DefaultResponder.NotFound(c, "product", c.Param("id"))
	case errors.Is(err, application.ErrInvalidInput):
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail(err.Error()))
	default:
		sharederrors.RespondError(c, err)
	}
}
