package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// CandidateFeedbackHandler exposes the post-drive candidate survey. The
// submission route is public so the kiosk page works without a login.
type CandidateFeedbackHandler struct {
	surveys *service.CandidateFeedbackService
}

// NewCandidateFeedbackHandler constructs CandidateFeedbackHandler.
func NewCandidateFeedbackHandler(surveys *service.CandidateFeedbackService) *CandidateFeedbackHandler {
	return &CandidateFeedbackHandler{surveys: surveys}
}

// Submit godoc
// @Summary Submit drive survey
// @Description Records a candidate's experience survey for the drive
// @Tags CandidateFeedback
// @Accept json
// @Produce json
// @Param payload body models.SubmitCandidateFeedbackRequest true "Survey payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /candidate-feedback [post]
func (h *CandidateFeedbackHandler) Submit(c *gin.Context) {
	var req models.SubmitCandidateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid survey payload"))
		return
	}
	survey, err := h.surveys.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, survey)
}

// List godoc
// @Summary List drive surveys
// @Tags CandidateFeedback
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /candidate-feedback [get]
func (h *CandidateFeedbackHandler) List(c *gin.Context) {
	surveys, err := h.surveys.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, surveys, nil)
}
