package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
	"github.com/courtside-sg/courtside-api/pkg/response"
)

type instructorService interface {
	List(ctx context.Context, filter models.RosterFilter) ([]models.Instructor, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Instructor, error)
}

// InstructorHandler wires the roster service to HTTP endpoints.
type InstructorHandler struct {
	service instructorService
}

// NewInstructorHandler constructs the handler.
func NewInstructorHandler(service instructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

// List godoc
// @Summary List instructor profiles
// @Tags Instructors
// @Produce json
// @Param search query string false "Name or bio substring"
// @Param sort_by query string false "Sort key: name, fee or rating"
// @Param order query string false "Sort order: asc or desc"
// @Param page query integer false "Page number"
// @Param page_size query integer false "Page size"
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	filter := models.RosterFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    strings.TrimSpace(c.Query("sort_by")),
		SortOrder: strings.TrimSpace(c.Query("order")),
	}
	var err error
	if filter.Page, err = parsePositiveInt(c, "page", 1); err != nil {
		response.Error(c, err)
		return
	}
	if filter.PageSize, err = parsePositiveInt(c, "page_size", models.DefaultRosterPageSize); err != nil {
		response.Error(c, err)
		return
	}

	instructors, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructors, pagination)
}

// Get godoc
// @Summary Get one instructor profile
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id} [get]
func (h *InstructorHandler) Get(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "instructor id is required"))
		return
	}
	instructor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructor, nil)
}

func parsePositiveInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, appErrors.Clone(appErrors.ErrValidation, key+" must be a positive integer")
	}
	return value, nil
}
