package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// RoundHandler serves the round progression table so UIs can offer
// next-round choices.
type RoundHandler struct{}

// NewRoundHandler constructs RoundHandler.
func NewRoundHandler() *RoundHandler {
	return &RoundHandler{}
}

// Progression godoc
// @Summary Round progression table
// @Description Maps each round to its usual successors. Informational; the server accepts any round string.
// @Tags Rounds
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rounds [get]
func (h *RoundHandler) Progression(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.RoundProgression, nil)
}
