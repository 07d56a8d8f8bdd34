package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/courtside-sg/courtside-api/internal/service"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
	"github.com/courtside-sg/courtside-api/pkg/response"
)

type notifyService interface {
	Enabled() bool
	Register(ctx context.Context, req service.NotifyRequest) (*service.NotifyRegistration, error)
}

// NotifyHandler accepts availability-notification requests for booked slots.
type NotifyHandler struct {
	service notifyService
}

// NewNotifyHandler constructs the handler.
func NewNotifyHandler(service notifyService) *NotifyHandler {
	return &NotifyHandler{service: service}
}

// Create godoc
// @Summary Request a notification when a booked slot frees up
// @Tags Notify
// @Accept json
// @Produce json
// @Param request body service.NotifyRequest true "Notification request"
// @Success 201 {object} response.Envelope
// @Router /notify-requests [post]
func (h *NotifyHandler) Create(c *gin.Context) {
	if h.service == nil || !h.service.Enabled() {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	var req service.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	registration, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, registration)
}
