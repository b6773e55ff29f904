package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/middleware"
	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

type queueService interface {
	Position(ctx context.Context, candidateID int64) (*models.QueuePosition, error)
	Board(ctx context.Context) (*models.QueueBoard, bool, error)
}

// QueueHandler exposes queue position and board endpoints.
type QueueHandler struct {
	queue queueService
}

// NewQueueHandler constructs QueueHandler.
func NewQueueHandler(queue queueService) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// Position godoc
// @Summary Queue position for one candidate
// @Tags Queue
// @Produce json
// @Param candidateId path int true "Candidate ID"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /queue/position/{candidateId} [get]
func (h *QueueHandler) Position(c *gin.Context) {
	candidateID, err := idParam(c, "candidateId")
	if err != nil {
		response.Error(c, err)
		return
	}
	position, err := h.queue.Position(c.Request.Context(), candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, position, nil)
}

// Board godoc
// @Summary Per-round queue board
// @Description Snapshot of every round's waiting queue, briefly cached for floor displays
// @Tags Queue
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /queue/board [get]
func (h *QueueHandler) Board(c *gin.Context) {
	board, cacheHit, err := h.queue.Board(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, board, nil, middleware.ExtractMeta(c))
}
