package handlers

import (
	"net/http"
	"strconv"

	"github.com/cscportal/portal-go/internal/api/middleware"
	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/policy"
	"github.com/cscportal/portal-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *application.SubmissionService
}

func NewDashboardHandler(svc *application.SubmissionService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) User(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.svc.UserDashboard(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) CSC(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	pendingPage, _ := strconv.Atoi(c.DefaultQuery("pending_page", "1"))
	completedPage, _ := strconv.Atoi(c.DefaultQuery("completed_page", "1"))

	dashboard, err := h.svc.CSCDashboard(actor, pendingPage, completedPage, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Technician has no workload yet; the endpoint exists so the role has a
// landing surface.
func (h *DashboardHandler) Technician(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if !policy.Allowed(actor.Role, actor.UID, policy.ActionDashboardTechnician, 0) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: application.ErrPermissionDenied.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": actor.Username,
		"role":     string(user.RoleTechnician),
		"message":  "Technician dashboard",
	})
}
