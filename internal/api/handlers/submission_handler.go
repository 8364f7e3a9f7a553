package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cscportal/portal-go/internal/api/middleware"
	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/storage"
	"github.com/cscportal/portal-go/pkg/response"
	"github.com/gin-gonic/gin"
)

const pageSize = 10

type SubmissionHandler struct {
	svc    *application.SubmissionService
	export *application.ExportService
}

func NewSubmissionHandler(svc *application.SubmissionService, export *application.ExportService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, export: export}
}

func formID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form ID"})
		return 0, false
	}
	return uint(id), true
}

// Create accepts multipart form data with an optional attached document.
func (h *SubmissionHandler) Create(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input submission.CreateSubmissionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	var documentKey string
	if file, err := c.FormFile("document"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Failed to read document"})
			return
		}
		defer src.Close()

		documentKey, err = storage.Upload(c.Request.Context(), src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to store document"})
			return
		}
	}

	sub, err := h.svc.Create(actor, input, documentKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	sub, err := h.svc.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	var input submission.UpdateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	sub, err := h.svc.Update(actor, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Complete(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	sub, err := h.svc.Complete(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Comment(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	var input submission.CommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	sub, err := h.svc.Comment(actor, id, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) ListOwn(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	subs, err := h.svc.ListOwn(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Download serves the rendered PDF of a completed form.
func (h *SubmissionHandler) Download(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	data, filename, err := h.export.Export(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Document returns a short-lived URL for the applicant's attached file.
func (h *SubmissionHandler) Document(c *gin.Context) {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}

	key, err := h.svc.DocumentKey(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := storage.PresignedGet(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate document URL"})
		return
	}
	c.JSON(http.StatusOK, response.DocumentURLResponse{URL: url})
}
