package handlers

import (
	"errors"
	"net/http"

	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User       *UserHandler
	Submission *SubmissionHandler
	Dashboard  *DashboardHandler
	Audit      *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Submission: NewSubmissionHandler(svc.Submission, svc.Export),
		Dashboard:  NewDashboardHandler(svc.Submission),
		Audit:      NewAuditHandler(svc.Audit),
	}
}

// respondError maps service errors onto HTTP statuses. Everything in the
// taxonomy is a per-request outcome; nothing here is fatal.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrSubmissionNotFound),
		errors.Is(err, application.ErrNoDocument):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrAlreadyCompleted),
		errors.Is(err, application.ErrNotEligible):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidDateOfBirth):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
