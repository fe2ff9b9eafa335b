package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/service"
)

type AuditHandler struct {
	service service.AuditService
	log     *logger.Logger
}

func NewAuditHandler(service service.AuditService, log *logger.Logger) *AuditHandler {
	return &AuditHandler{service: service, log: log}
}

// @Summary Recent status history
// @Description The five most recent status changes for the open applicant, role permitting
// @Tags Audit
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /reviews/current/history [get]
func (h *AuditHandler) Recent(c *gin.Context) {
	resp, err := h.service.Recent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
