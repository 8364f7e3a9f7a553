package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/repository"
	"github.com/cscportal/portal-go/internal/repository/mock_repository"
	"github.com/cscportal/portal-go/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs injects claims the way the JWT middleware would after a
// successful parse.
func authAs(u user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &types.Claims{
			UserID:   u.UID,
			Username: u.Username,
			Role:     u.Role,
		})
		c.Next()
	}
}

func setupRouter(t *testing.T, actor user.User) (*gin.Engine, *mock_repository.MockSubmissionRepo, *mock_repository.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSub := mock_repository.NewMockSubmissionRepo(ctrl)
	mockAudit := mock_repository.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Submission: mockSub,
		Audit:      mockAudit,
	}
	h := New(application.New(repos))

	r := gin.New()
	auth := r.Group("/", authAs(actor))
	auth.GET("/forms/:id", h.Submission.Get)
	auth.PUT("/forms/:id", h.Submission.Update)
	auth.POST("/forms/:id/complete", h.Submission.Complete)
	auth.GET("/forms/:id/download", h.Submission.Download)
	return r, mockSub, mockAudit
}

var handlerOwner = user.User{UID: 1, Username: "alice", Role: user.RoleUser}
var handlerStaff = user.User{UID: 3, Username: "carol", Role: user.RoleCSC}

func handlerRecord(status submission.Status) submission.Submission {
	return submission.Submission{
		ID:          5,
		UserID:      handlerOwner.UID,
		FullName:    "Alice Example",
		Email:       "alice@example.com",
		PhoneNumber: "5551234567",
		Address:     "1 Main Street",
		Occupation:  "Engineer",
		Purpose:     "Residence certificate",
		Status:      status,
	}
}

func TestGetForm_OK(t *testing.T) {
	r, mockSub, _ := setupRouter(t, handlerOwner)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusSubmitted), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got submission.Submission
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(5), got.ID)
}

func TestGetForm_InvalidID(t *testing.T) {
	r, _, _ := setupRouter(t, handlerOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetForm_NotFoundMapsTo404(t *testing.T) {
	r, mockSub, _ := setupRouter(t, handlerOwner)

	mockSub.EXPECT().FindByID(uint(9)).Return(submission.Submission{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetForm_ForeignOwnerMapsTo403(t *testing.T) {
	stranger := user.User{UID: 2, Username: "bob", Role: user.RoleUser}
	r, mockSub, _ := setupRouter(t, stranger)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusSubmitted), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateForm_OK(t *testing.T) {
	r, mockSub, mockAudit := setupRouter(t, handlerStaff)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusSubmitted), nil)
	mockSub.EXPECT().Save(gomock.Any()).Return(nil)
	mockAudit.EXPECT().CreateAction(gomock.Any()).Return(nil)

	body, _ := json.Marshal(map[string]string{"occupation": "Plumber"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/forms/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got submission.Submission
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Plumber", got.Occupation)
}

func TestUpdateForm_BindingRejectsBadStatus(t *testing.T) {
	r, _, _ := setupRouter(t, handlerStaff)

	body, _ := json.Marshal(map[string]string{"status": "rejected"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/forms/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteForm_AlreadyCompletedMapsTo409(t *testing.T) {
	r, mockSub, _ := setupRouter(t, handlerStaff)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusCompleted), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/5/complete", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDownload_NotEligibleMapsTo409(t *testing.T) {
	r, mockSub, _ := setupRouter(t, handlerOwner)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusUnderProcess), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/5/download", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDownload_ServesPDF(t *testing.T) {
	r, mockSub, _ := setupRouter(t, handlerOwner)

	mockSub.EXPECT().FindByID(uint(5)).Return(handlerRecord(submission.StatusCompleted), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/5/download", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "form_5.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
