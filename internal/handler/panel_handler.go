package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// PanelHandler exposes panel endpoints.
type PanelHandler struct {
	panels *service.PanelService
}

// NewPanelHandler constructs PanelHandler.
func NewPanelHandler(panels *service.PanelService) *PanelHandler {
	return &PanelHandler{panels: panels}
}

// List godoc
// @Summary List panels
// @Tags Panels
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /panels [get]
func (h *PanelHandler) List(c *gin.Context) {
	panels, err := h.panels.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, panels, nil)
}

// Get godoc
// @Summary Get panel detail
// @Tags Panels
// @Produce json
// @Param id path int true "Panel ID"
// @Success 200 {object} response.Envelope
// @Router /panels/{id} [get]
func (h *PanelHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	panel, err := h.panels.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, panel, nil)
}

// Create godoc
// @Summary Create panel
// @Tags Panels
// @Accept json
// @Produce json
// @Param payload body models.CreatePanelRequest true "Panel payload"
// @Success 201 {object} response.Envelope
// @Router /panels [post]
func (h *PanelHandler) Create(c *gin.Context) {
	var req models.CreatePanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid panel payload"))
		return
	}
	panel, err := h.panels.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, panel)
}

// Update godoc
// @Summary Update panel
// @Tags Panels
// @Accept json
// @Produce json
// @Param id path int true "Panel ID"
// @Param payload body models.UpdatePanelPatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /panels/{id} [patch]
func (h *PanelHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.UpdatePanelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid panel payload"))
		return
	}
	panel, err := h.panels.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, panel, nil)
}

// AssignCandidate godoc
// @Summary Assign candidate to panel
// @Description Pulls a candidate out of the queue and puts them in process with this panel
// @Tags Panels
// @Produce json
// @Param id path int true "Panel ID"
// @Param candidateId path int true "Candidate ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /panels/{id}/assign-candidate/{candidateId} [post]
func (h *PanelHandler) AssignCandidate(c *gin.Context) {
	panelID, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	candidateID, err := idParam(c, "candidateId")
	if err != nil {
		response.Error(c, err)
		return
	}
	panel, candidate, err := h.panels.AssignCandidate(c.Request.Context(), panelID, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"panel": panel, "candidate": candidate}, nil)
}

// ReleaseCandidate godoc
// @Summary Release the panel's current candidate
// @Description Returns the in-process candidate to the queue and frees the panel
// @Tags Panels
// @Produce json
// @Param id path int true "Panel ID"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /panels/{id}/release-candidate [post]
func (h *PanelHandler) ReleaseCandidate(c *gin.Context) {
	panelID, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	panel, candidate, err := h.panels.ReleaseCandidate(c.Request.Context(), panelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"panel": panel, "candidate": candidate}, nil)
}
