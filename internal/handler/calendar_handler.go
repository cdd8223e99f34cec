package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/service"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
	"github.com/noah-isme/studytime-api/pkg/response"
)

// CalendarHandler exposes course, job, commute and break endpoints.
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler constructs a calendar handler.
func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// ListCourses godoc
// @Summary List courses
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CalendarHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// CreateCourse godoc
// @Summary Create course
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CalendarHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// UpdateCourse godoc
// @Summary Update course
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body dto.UpdateCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [put]
func (h *CalendarHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.service.UpdateCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags Calendar
// @Param id path string true "Course ID"
// @Success 204
// @Router /courses/{id} [delete]
func (h *CalendarHandler) DeleteCourse(c *gin.Context) {
	if err := h.service.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListJobs godoc
// @Summary List jobs
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *CalendarHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs, nil)
}

// CreateJob godoc
// @Summary Create job
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateRecurringBlockRequest true "Job payload"
// @Success 201 {object} response.Envelope
// @Router /jobs [post]
func (h *CalendarHandler) CreateJob(c *gin.Context) {
	var req dto.CreateRecurringBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job payload"))
		return
	}
	job, err := h.service.CreateJob(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// UpdateJob godoc
// @Summary Update job
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param payload body dto.CreateRecurringBlockRequest true "Job payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id} [put]
func (h *CalendarHandler) UpdateJob(c *gin.Context) {
	var req dto.CreateRecurringBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job payload"))
		return
	}
	job, err := h.service.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// DeleteJob godoc
// @Summary Delete job
// @Tags Calendar
// @Param id path string true "Job ID"
// @Success 204
// @Router /jobs/{id} [delete]
func (h *CalendarHandler) DeleteJob(c *gin.Context) {
	if err := h.service.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListCommutes godoc
// @Summary List commutes
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /commutes [get]
func (h *CalendarHandler) ListCommutes(c *gin.Context) {
	commutes, err := h.service.ListCommutes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, commutes, nil)
}

// CreateCommute godoc
// @Summary Create commute
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateRecurringBlockRequest true "Commute payload"
// @Success 201 {object} response.Envelope
// @Router /commutes [post]
func (h *CalendarHandler) CreateCommute(c *gin.Context) {
	var req dto.CreateRecurringBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid commute payload"))
		return
	}
	commute, err := h.service.CreateCommute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, commute)
}

// UpdateCommute godoc
// @Summary Update commute
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Commute ID"
// @Param payload body dto.CreateRecurringBlockRequest true "Commute payload"
// @Success 200 {object} response.Envelope
// @Router /commutes/{id} [put]
func (h *CalendarHandler) UpdateCommute(c *gin.Context) {
	var req dto.CreateRecurringBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid commute payload"))
		return
	}
	commute, err := h.service.UpdateCommute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, commute, nil)
}

// DeleteCommute godoc
// @Summary Delete commute
// @Tags Calendar
// @Param id path string true "Commute ID"
// @Success 204
// @Router /commutes/{id} [delete]
func (h *CalendarHandler) DeleteCommute(c *gin.Context) {
	if err := h.service.DeleteCommute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListBreaks godoc
// @Summary List breaks
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /breaks [get]
func (h *CalendarHandler) ListBreaks(c *gin.Context) {
	breaks, err := h.service.ListBreaks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, breaks, nil)
}

// CreateBreak godoc
// @Summary Create break
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateBreakRequest true "Break payload"
// @Success 201 {object} response.Envelope
// @Router /breaks [post]
func (h *CalendarHandler) CreateBreak(c *gin.Context) {
	var req dto.CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid break payload"))
		return
	}
	blk, err := h.service.CreateBreak(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, blk)
}

// UpdateBreak godoc
// @Summary Update break
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Break ID"
// @Param payload body dto.CreateBreakRequest true "Break payload"
// @Success 200 {object} response.Envelope
// @Router /breaks/{id} [put]
func (h *CalendarHandler) UpdateBreak(c *gin.Context) {
	var req dto.CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid break payload"))
		return
	}
	blk, err := h.service.UpdateBreak(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, blk, nil)
}

// DeleteBreak godoc
// @Summary Delete break
// @Tags Calendar
// @Param id path string true "Break ID"
// @Success 204
// @Router /breaks/{id} [delete]
func (h *CalendarHandler) DeleteBreak(c *gin.Context) {
	if err := h.service.DeleteBreak(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
