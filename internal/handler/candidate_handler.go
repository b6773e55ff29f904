package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// CandidateHandler exposes candidate endpoints.
type CandidateHandler struct {
	candidates *service.CandidateService
}

// NewCandidateHandler constructs CandidateHandler.
func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// List godoc
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Param status query string false "Filter by pipeline status"
// @Param round query string false "Filter by current round"
// @Param search query string false "Search by name, email or serial"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	var filter models.CandidateFilter
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		v := models.CandidateStatus(status)
		filter.Status = &v
	}
	filter.Round = strings.TrimSpace(c.Query("round"))
	filter.Search = strings.TrimSpace(c.Query("search"))
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	candidates, pagination, err := h.candidates.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidates, pagination)
}

// Get godoc
// @Summary Get candidate detail
// @Tags Candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} response.Envelope
// @Router /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	candidate, err := h.candidates.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidate, nil)
}

// GetBySerial godoc
// @Summary Get candidate by serial number
// @Tags Candidates
// @Produce json
// @Param serial path string true "Serial number, e.g. WD-042"
// @Success 200 {object} response.Envelope
// @Router /candidates/serial/{serial} [get]
func (h *CandidateHandler) GetBySerial(c *gin.Context) {
	serial := strings.TrimSpace(c.Param("serial"))
	candidate, err := h.candidates.GetBySerial(c.Request.Context(), serial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidate, nil)
}

// Register godoc
// @Summary Register candidate
// @Description Registers a walk-in candidate, assigning serial number and QR code
// @Tags Candidates
// @Accept json
// @Produce json
// @Param payload body models.RegisterCandidateRequest true "Candidate payload"
// @Success 201 {object} response.Envelope
// @Router /candidates [post]
func (h *CandidateHandler) Register(c *gin.Context) {
	var req models.RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid candidate payload"))
		return
	}
	candidate, err := h.candidates.Register(c.Request.Context(), req, models.SourceManual)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, candidate)
}

// Update godoc
// @Summary Update candidate
// @Description Partial update; admins may override status and round here
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param payload body models.UpdateCandidatePatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.UpdateCandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid candidate payload"))
		return
	}
	candidate, err := h.candidates.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidate, nil)
}
