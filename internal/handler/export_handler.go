package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/service"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
	"github.com/noah-isme/studytime-api/pkg/response"
)

var exportContentTypes = map[string]string{
	service.FormatPDF: "application/pdf",
	service.FormatCSV: "text/csv",
}

// ExportHandler exposes schedule export endpoints.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Download godoc
// @Summary Render the schedule and download it
// @Tags Export
// @Accept json
// @Produce application/pdf
// @Param format path string true "Export format (pdf or csv)"
// @Param payload body dto.ExportScheduleRequest false "Events to render; omit to use the saved schedule"
// @Success 200 {file} binary
// @Router /export/{format} [post]
func (h *ExportHandler) Download(c *gin.Context) {
	format := c.Param("format")
	contentType, ok := exportContentTypes[format]
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported export format"))
		return
	}
	var req dto.ExportScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
			return
		}
	}
	data, filename, err := h.service.Render(c.Request.Context(), format, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// Enqueue godoc
// @Summary Queue an asynchronous schedule export
// @Tags Export
// @Accept json
// @Produce json
// @Param format path string true "Export format (pdf or csv)"
// @Param payload body dto.ExportScheduleRequest false "Events to render; omit to use the saved schedule"
// @Success 202 {object} response.Envelope
// @Router /export/{format}/async [post]
func (h *ExportHandler) Enqueue(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
			return
		}
	}
	state, err := h.service.Enqueue(c.Request.Context(), c.Param("format"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, state, nil)
}

// DownloadFile godoc
// @Summary Download the result of an asynchronous export
// @Tags Export
// @Param name path string true "Stored filename"
// @Success 200 {file} binary
// @Router /export/files/{name} [get]
func (h *ExportHandler) DownloadFile(c *gin.Context) {
	name := c.Param("name")
	file, err := h.service.File(name)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	contentType := "application/octet-stream"
	if ct, ok := exportContentTypes[strings.TrimPrefix(filepath.Ext(name), ".")]; ok {
		contentType = ct
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}

// JobStatus godoc
// @Summary Check an asynchronous export job
// @Tags Export
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /export/jobs/{id} [get]
func (h *ExportHandler) JobStatus(c *gin.Context) {
	state, err := h.service.JobStatus(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}
