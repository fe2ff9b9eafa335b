package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/rbac"
	"github.com/marga120/mds-application-sub000/internal/types"
)

type PermissionHandler struct {
	gate *rbac.Gate
	log  *logger.Logger
}

func NewPermissionHandler(gate *rbac.Gate, log *logger.Logger) *PermissionHandler {
	return &PermissionHandler{gate: gate, log: log}
}

// @Summary Field permissions for the acting role
// @Description The full field-access map, re-resolved per request
// @Tags Permissions
// @Produce json
// @Success 200 {object} map[types.ReviewField]rbac.FieldAccess
// @Router /permissions [get]
func (h *PermissionHandler) Resolve(c *gin.Context) {
	role := types.GetRole(c.Request.Context())
	c.JSON(http.StatusOK, h.gate.ResolveAll(role))
}
