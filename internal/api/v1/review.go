package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marga120/mds-application-sub000/internal/api/dto"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/service"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log}
}

// @Summary Open an applicant's review surface
// @Description Load the applicant's review fields into the state store
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Applicant ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /reviews/{id}/open [post]
func (h *ReviewHandler) Open(c *gin.Context) {
	resp, err := h.service.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get the open review surface
// @Description Current fields, pending preview and field permissions for the acting role
// @Tags Reviews
// @Produce json
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /reviews/current [get]
func (h *ReviewHandler) Current(c *gin.Context) {
	resp, err := h.service.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Propose a status change
// @Description Compute the (old, new) preview; proposing the current value clears it
// @Tags Reviews
// @Accept json
// @Produce json
// @Param proposal body dto.ProposeStatusRequest true "Proposed status"
// @Success 200 {object} dto.ProposeStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /reviews/current/propose [post]
func (h *ReviewHandler) Propose(c *gin.Context) {
	var req dto.ProposeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Propose(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Commit the pending status change
// @Description Persist the proposed transition; no-op while a commit is in flight
// @Tags Reviews
// @Produce json
// @Success 200 {object} dto.CommitStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /reviews/current/commit [post]
func (h *ReviewHandler) Commit(c *gin.Context) {
	resp, err := h.service.Commit(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update prerequisite notes and rating
// @Tags Reviews
// @Accept json
// @Produce json
// @Param prerequisites body dto.UpdatePrerequisitesRequest true "Prerequisite fields"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /reviews/current/prerequisites [put]
func (h *ReviewHandler) UpdatePrerequisites(c *gin.Context) {
	var req dto.UpdatePrerequisitesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePrerequisites(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update the scholarship decision
// @Tags Reviews
// @Accept json
// @Produce json
// @Param scholarship body dto.UpdateScholarshipRequest true "Scholarship decision"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /reviews/current/scholarship [put]
func (h *ReviewHandler) UpdateScholarship(c *gin.Context) {
	var req dto.UpdateScholarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateScholarship(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update the English-proficiency sub-status
// @Tags Reviews
// @Accept json
// @Produce json
// @Param english body dto.UpdateEnglishStatusRequest true "English status and evidence"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /reviews/current/english-status [put]
func (h *ReviewHandler) UpdateEnglishStatus(c *gin.Context) {
	var req dto.UpdateEnglishStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateEnglishStatus(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update the overall GPA note
// @Tags Reviews
// @Accept json
// @Produce json
// @Param gpa body dto.UpdateGPARequest true "GPA note"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /reviews/current/gpa [put]
func (h *ReviewHandler) UpdateGPA(c *gin.Context) {
	var req dto.UpdateGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateGPA(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
