package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/service"
)

type AcademicHandler struct {
	service service.CredentialService
	log     *logger.Logger
}

func NewAcademicHandler(service service.CredentialService, log *logger.Logger) *AcademicHandler {
	return &AcademicHandler{service: service, log: log}
}

// @Summary Best-credential summary
// @Description Derive the highest-degree summary from the applicant's institution history
// @Tags Academic
// @Produce json
// @Param id path string true "Applicant ID"
// @Success 200 {object} dto.CredentialSummaryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /applicants/{id}/credential-summary [get]
func (h *AcademicHandler) CredentialSummary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
