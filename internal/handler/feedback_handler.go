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

// FeedbackHandler exposes interview feedback endpoints.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit godoc
// @Summary Submit interview feedback
// @Description Records the panel's verdict and moves the candidate through the pipeline
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body models.SubmitFeedbackRequest true "Feedback payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}
	feedback, err := h.feedback.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, feedback)
}

// List godoc
// @Summary List interview feedback
// @Tags Feedback
// @Produce json
// @Param candidateId query int false "Filter by candidate"
// @Param panelId query int false "Filter by panel"
// @Param round query string false "Filter by round"
// @Success 200 {object} response.Envelope
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	var filter models.FeedbackFilter
	if v, err := strconv.ParseInt(c.Query("candidateId"), 10, 64); err == nil {
		filter.CandidateID = v
	}
	if v, err := strconv.ParseInt(c.Query("panelId"), 10, 64); err == nil {
		filter.PanelID = v
	}
	filter.Round = strings.TrimSpace(c.Query("round"))

	feedback, err := h.feedback.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, feedback, nil)
}
