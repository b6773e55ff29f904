package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// WebhookSecretHeader carries the shared secret on ingestion calls.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookHandler ingests candidate registrations pushed from the Google
// Sheets form. The route is public; when a shared secret is configured the
// caller must echo it back in the secret header.
type WebhookHandler struct {
	candidates *service.CandidateService
	secret     string
}

// NewWebhookHandler constructs WebhookHandler. An empty secret disables
// the header check.
func NewWebhookHandler(candidates *service.CandidateService, secret string) *WebhookHandler {
	return &WebhookHandler{candidates: candidates, secret: secret}
}

// GoogleSheets godoc
// @Summary Ingest sheet form submission
// @Description Registers a candidate from a form submission. Accepts JSON or form encoding.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string false "Shared secret, required when configured"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /webhooks/google-sheets [post]
func (h *WebhookHandler) GoogleSheets(c *gin.Context) {
	if h.secret != "" {
		got := c.GetHeader(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid webhook secret"))
			return
		}
	}

	req, err := h.bindSubmission(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	candidate, err := h.candidates.Register(c.Request.Context(), req, models.SourceSheets)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, candidate)
}

// bindSubmission accepts both encodings Apps Script emits: form fields by
// default, JSON when the script uses UrlFetchApp with a JSON payload.
func (h *WebhookHandler) bindSubmission(c *gin.Context) (models.RegisterCandidateRequest, error) {
	var req models.RegisterCandidateRequest

	switch c.ContentType() {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		req.Name = strings.TrimSpace(c.PostForm("name"))
		req.Email = strings.TrimSpace(c.PostForm("email"))
		req.Phone = strings.TrimSpace(c.PostForm("phone"))
		req.Position = strings.TrimSpace(c.PostForm("position"))
		return req, nil
	default:
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload")
		}
		return req, nil
	}
}
