package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/application"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
	sharederrors "github.com/delicias-da-thai/storefront/internal/shared/errors"
)

// Handler exposes store configuration endpoints. The storefront reads the
// public status; everything else is operator-only.
type Handler struct {
	service ports.Service
}

func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublic mounts the storefront-facing routes.
func (h *Handler) RegisterPublic(r gin.IRoutes) {
	r.GET("/store", h.status)
	r.GET("/zones", h.listZones)
}

// RegisterAdmin mounts operator-only configuration routes.
func (h *Handler) RegisterAdmin(r gin.IRoutes) {
	r.GET("/settings", h.getSettings)
	r.PUT("/settings", h.updateSettings)
	r.PATCH("/settings/manual-open", h.setManualOpen)
	r.POST("/zones", h.createZone)
	r.PUT("/zones/:id", h.updateZone)
	r.DELETE("/zones/:id", h.deleteZone)
}

type weekdayHoursDTO struct {
	Weekday int    `json:"weekday"`
	Open    bool   `json:"open"`
	Opens   string `json:"opens,omitempty"`
	Closes  string `json:"closes,omitempty"`
}

type settingsRequest struct {
	DeliveryEnabled bool              `json:"deliveryEnabled"`
	Hours           []weekdayHoursDTO `json:"hours" binding:"required"`
	LogoURL         string            `json:"logoUrl"`
	Address         string            `json:"address"`
}

type settingsResponse struct {
	DeliveryEnabled bool              `json:"deliveryEnabled"`
	Hours           []weekdayHoursDTO `json:"hours"`
	LogoURL         string            `json:"logoUrl,omitempty"`
	Address         string            `json:"address,omitempty"`
}

type manualOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

type statusResponse struct {
	AcceptingOrders bool   `json:"acceptingOrders"`
	DeliveryEnabled bool   `json:"deliveryEnabled"`
	LogoURL         string `json:"logoUrl,omitempty"`
	Address         string `json:"address,omitempty"`
}

type zoneRequest struct {
	Neighborhood string `json:"neighborhood" binding:"required"`
	Fee          string `json:"fee" binding:"required"`
}

type zoneResponse struct {
	ID           string `json:"id"`
	Neighborhood string `json:"neighborhood"`
	Fee          string `json:"fee"`
}

func toHoursDTO(hours []domain.WeekdayHours) []weekdayHoursDTO {
	out := make([]weekdayHoursDTO, 0, len(hours))
	for _, h := range hours {
		out = append(out, weekdayHoursDTO{
			Weekday: int(h.Weekday),
			Open:    h.Open,
			Opens:   h.Opens,
			Closes:  h.Closes,
		})
	}
	return out
}

func fromHoursDTO(hours []weekdayHoursDTO) []domain.WeekdayHours {
	out := make([]domain.WeekdayHours, 0, len(hours))
	for _, h := range hours {
		out = append(out, domain.WeekdayHours{
			Weekday: time.Weekday(h.Weekday),
			Open:    h.Open,
			Opens:   h.Opens,
			Closes:  h.Closes,
		})
	}
	return out
}

func toZoneResponse(zone *domain.DeliveryZone) zoneResponse {
	return zoneResponse{
		ID:           zone.ID,
		Neighborhood: zone.Neighborhood,
		Fee:          zone.Fee.StringFixed(2),
	}
}

// status is the storefront's gate: accepting-orders is evaluated fresh on
// every request.
func (h *Handler) status(c *gin.Context) {
	ctx := c.Request.Context()
	settings, err := h.service.GetSettings(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	open, err := h.service.IsAcceptingOrders(ctx, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{
		AcceptingOrders: open,
		DeliveryEnabled: settings.DeliveryEnabled,
		LogoURL:         settings.LogoURL,
		Address:         settings.Address,
	})
}

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsResponse{
		DeliveryEnabled: settings.DeliveryEnabled,
		Hours:           toHoursDTO(settings.Hours),
		LogoURL:         settings.LogoURL,
		Address:         settings.Address,
	})
}

func (h *Handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	settings, err := h.service.UpdateSettings(c.Request.Context(), ports.SettingsInput{
		DeliveryEnabled: req.DeliveryEnabled,
		Hours:           fromHoursDTO(req.Hours),
		LogoURL:         req.LogoURL,
		Address:         req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsResponse{
		DeliveryEnabled: settings.DeliveryEnabled,
		Hours:           toHoursDTO(settings.Hours),
		LogoURL:         settings.LogoURL,
		Address:         settings.Address,
	})
}

func (h *Handler) setManualOpen(c *gin.Context) {
	var req manualOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	if err := h.service.SetManualOpen(c.Request.Context(), *req.Open); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": *req.Open})
}

func (h *Handler) listZones(c *gin.Context) {
	zones, err := h.service.ListZones(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]zoneResponse, 0, len(zones))
	for _, zone := range zones {
		out = append(out, toZoneResponse(zone))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) bindZone(c *gin.Context) (ports.ZoneInput, bool) {
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.RespondError(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return ports.ZoneInput{}, false
	}
	fee, err := decimal.NewFromString(req.Fee)
	if err != nil {
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail("fee must be a decimal string"))
		return ports.ZoneInput{}, false
	}
	return ports.ZoneInput{Neighborhood: req.Neighborhood, Fee: fee}, true
}

func (h *Handler) createZone(c *gin.Context) {
	input, ok := h.bindZone(c)
	if !ok {
		return
	}
	zone, err := h.service.CreateZone(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toZoneResponse(zone))
}

func (h *Handler) updateZone(c *gin.Context) {
	input, ok := h.bindZone(c)
	if !ok {
		return
	}
	zone, err := h.service.UpdateZone(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(zone))
}

func (h *Handler) deleteZone(c *gin.Context) {
	if err := h.service.DeleteZone(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ports.ErrZoneNotFound):
		sharederrors.DefaultResponder.NotFound(c, "delivery zone", c.Param("id"))
	case errors.Is(err, application.ErrInvalidInput):
		sharederrors.RespondError(c, sharederrors.ErrValidation.WithDetail(err.Error()))
	default:
		sharederrors.RespondError(c, err)
	}
}
