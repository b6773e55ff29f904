package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// ExportHandler exposes roster export endpoints.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Candidates godoc
// @Summary Export the candidate roster
// @Description Streams the filtered roster as a CSV or PDF attachment
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param status query string false "Filter by pipeline status"
// @Param round query string false "Filter by current round"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /exports/candidates [get]
func (h *ExportHandler) Candidates(c *gin.Context) {
	var filter models.CandidateFilter
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		v := models.CandidateStatus(status)
		filter.Status = &v
	}
	filter.Round = strings.TrimSpace(c.Query("round"))

	// Render into a buffer first so a mid-export failure still yields a
	// clean error envelope instead of a truncated download.
	var buf bytes.Buffer
	contentType, filename, err := h.exports.Candidates(c.Request.Context(), &buf, c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
