package handlers

import (
	"errors"
	"log"
	"net/http"

	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// JobsHandler exposes the background jobs so an external scheduler can
// trigger them.
type JobsHandler struct {
	usecase usecase.IJobsUseCase
}

func NewJobsHandler(uc usecase.IJobsUseCase) *JobsHandler {
	return &JobsHandler{usecase: uc}
}

func (h *JobsHandler) Sync(c *gin.Context) {
	report, err := h.usecase.RunSync(c.Request.Context())
	if err != nil {
		log.Printf("[jobs][handler] sync failed err=%v", err)
		appErr := mapJobsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

func (h *JobsHandler) RecoveryEmails(c *gin.Context) {
	report, err := h.usecase.RunRecoveryEmails(c.Request.Context())
	if err != nil {
		log.Printf("[jobs][handler] recovery failed err=%v", err)
		appErr := mapJobsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

func (h *JobsHandler) Cron(c *gin.Context) {
	report, err := h.usecase.RunAll(c.Request.Context())
	if err != nil {
		log.Printf("[jobs][handler] cron failed err=%v", err)
		appErr := mapJobsError(err).WithDetails(map[string]any{"report": report})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

func mapJobsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrJobAlreadyRunning):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_RUNNING", "Job already running", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
