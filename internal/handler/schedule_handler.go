package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/service"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
	"github.com/noah-isme/studytime-api/pkg/response"
)

// ScheduleHandler exposes schedule generation and persistence endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Generate godoc
// @Summary Generate a study schedule from an ad-hoc payload
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Calendar, tasks and preferences"
// @Success 200 {object} response.Envelope
// @Router /schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// GenerateFromStore godoc
// @Summary Generate a study schedule from stored calendar and tasks
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/generate/from-database [post]
func (h *ScheduleHandler) GenerateFromStore(c *gin.Context) {
	result, err := h.service.GenerateFromStore(c.Request.Context(), defaultUserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Save godoc
// @Summary Persist a generated schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.SaveScheduleRequest true "Events to persist"
// @Success 201 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Save(c *gin.Context) {
	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid save payload"))
		return
	}
	events, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, events)
}

// ListSaved godoc
// @Summary List the saved schedule
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) ListSaved(c *gin.Context) {
	events, cached, err := h.service.ListSaved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil, map[string]interface{}{"cached": cached})
}

// SetEventStatus godoc
// @Summary Update the status of one saved event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 204
// @Router /schedule/events/{id}/status [patch]
func (h *ScheduleHandler) SetEventStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	if err := h.service.SetEventStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Clear godoc
// @Summary Delete the saved schedule
// @Tags Schedule
// @Success 204
// @Router /schedule [delete]
func (h *ScheduleHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
