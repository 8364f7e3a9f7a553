package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cscportal/portal-go/internal/api/middleware"
	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/repository"
	"github.com/cscportal/portal-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) GetActions(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params repository.AuditQueryParams

	if v := c.Query("submission_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid submission_id"})
			return
		}
		sid := uint(id)
		params.SubmissionID = &sid
	}
	if v := c.Query("actor_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid actor_id"})
			return
		}
		aid := uint(id)
		params.ActorID = &aid
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	actions, err := h.svc.QueryActions(actor, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}
