package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/http/mapper"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/application"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
	sharederrors "github.com/delicias-da-thai/storefront/internal/shared/errors"
)

// sessionHeader carries the storefront's anonymous session identifier.
const sessionHeader = "X-Session-ID"

// Handler exposes the cart and checkout endpoints. Each customer session
// works against its own cart, keyed by the session header.
type Handler struct {
	service ports.Service
	archive ports.ArchiveRepository
}

func NewHandler(service ports.Service, archive ports.ArchiveRepository) *Handler {
	return &Handler{service: service, archive: archive}
}

// RegisterPublic mounts the storefront cart routes.
func (h *Handler) RegisterPublic(r gin.IRoutes) {
	r.GET("/cart", h.getCart)
	r.DELETE("/cart", h.reset)
	r.POST("/cart/items", h.addItem)
	r.PUT("/cart/items/:itemId", h.setQuantity)
	r.DELETE("/cart/items/:itemId", h.removeItem)
	r.PUT("/cart/fulfillment", h.setFulfillmentMode)
	r.PUT("/cart/zone", h.selectZone)
	r.PATCH("/cart/customer", h.updateCustomer)
	r.POST("/checkout", h.checkout)
}

// RegisterAdmin mounts the order archive routes.
func (h *Handler) RegisterAdmin(r gin.IRoutes) {
	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrder)
}

func sessionID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail("X-Session-ID header is required"))
		return "", false
	}
	return id, true
}

type addItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type fulfillmentRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type zoneRequest struct {
	ZoneID string `json:"zoneId" binding:"required"`
}

type customerRequest struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	Address       *string    `json:"address"`
	Notes         *string    `json:"notes"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	ClearSchedule bool       `json:"clearSchedule"`
}

type checkoutResponse struct {
	Message  string                `json:"message"`
	Link     string                `json:"link"`
	Order    mapper.SubmittedOrder `json:"order"`
	Archived bool                  `json:"archived"`
}

func (h *Handler) getCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	cart, err := h.service.GetCart(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) reset(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.service.Reset(c.Request.Context(), session); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addItem(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	cart, err := h.service.AddItem(c.Request.Context(), session, req.ItemID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) setQuantity(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	cart, err := h.service.SetQuantity(c.Request.Context(), session, c.Param("itemId"), *req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) removeItem(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	cart, err := h.service.RemoveItem(c.Request.Context(), session, c.Param("itemId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) setFulfillmentMode(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req fulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	mode := domain.FulfillmentMode(req.Mode)
	if mode != domain.ModePickup && mode != domain.ModeDelivery {
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail("mode must be 'retirada' or 'entrega'"))
		return
	}
	cart, err := h.service.SetFulfillmentMode(c.Request.Context(), session, mode)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) selectZone(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	cart, err := h.service.SelectZone(c.Request.Context(), session, req.ZoneID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) updateCustomer(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	cart, err := h.service.UpdateCustomer(c.Request.Context(), session, domain.CustomerPatch{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		ScheduledAt:   req.ScheduledAt,
		ClearSchedule: req.ClearSchedule,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainCart(cart))
}

func (h *Handler) checkout(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	submission, err := h.service.Checkout(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse{
		Message:  submission.Message,
		Link:     submission.Link,
		Order:    mapper.FromDomainOrder(submission.Order),
		Archived: submission.Archived,
	})
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.archive.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]mapper.SubmittedOrder, 0, len(orders))
	for _, order := range orders {
		out = append(out, mapper.FromDomainOrder(order))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.archive.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(order))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case application.IsCheckoutFailure(err):
		sharederrors.RespondError(c, sharederrors.ErrUnprocessable.
			WithDetail(err.Error()).
			WithExtension("code", application.FailureCode(err)))
	case errors.Is(err, application.ErrInvalidInput):
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, ports.ErrOrderNotFound):
		sharederrors.DefaultResponder.NotFound(c, "order", c.Param("id"))
	default:
		sharederrors.RespondError(c, err)
	}
}
