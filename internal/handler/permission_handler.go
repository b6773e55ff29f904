package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/response"
)

// PermissionHandler exposes role permission bundle endpoints.
type PermissionHandler struct {
	permissions *service.PermissionService
}

// NewPermissionHandler constructs PermissionHandler.
func NewPermissionHandler(permissions *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

// List godoc
// @Summary List role permission bundles
// @Tags RolePermissions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /role-permissions [get]
func (h *PermissionHandler) List(c *gin.Context) {
	bundles, err := h.permissions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundles, nil)
}

// Get godoc
// @Summary Get role permission bundle
// @Tags RolePermissions
// @Produce json
// @Param id path int true "Role permission ID"
// @Success 200 {object} response.Envelope
// @Router /role-permissions/{id} [get]
func (h *PermissionHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	bundle, err := h.permissions.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle, nil)
}

// Create godoc
// @Summary Create role permission bundle
// @Tags RolePermissions
// @Accept json
// @Produce json
// @Param payload body models.CreateRolePermissionRequest true "Bundle payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /role-permissions [post]
func (h *PermissionHandler) Create(c *gin.Context) {
	var req models.CreateRolePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role permission payload"))
		return
	}
	bundle, err := h.permissions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, bundle)
}

// Update godoc
// @Summary Update role permission bundle
// @Tags RolePermissions
// @Accept json
// @Produce json
// @Param id path int true "Role permission ID"
// @Param payload body models.UpdateRolePermissionPatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /role-permissions/{id} [patch]
func (h *PermissionHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.UpdateRolePermissionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid role permission payload"))
		return
	}
	bundle, err := h.permissions.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bundle, nil)
}

// Delete godoc
// @Summary Delete role permission bundle
// @Description The role falls back to its built-in default bundle
// @Tags RolePermissions
// @Produce json
// @Param id path int true "Role permission ID"
// @Success 204
// @Router /role-permissions/{id} [delete]
func (h *PermissionHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.permissions.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
