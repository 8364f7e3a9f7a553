package handlers

import (
	"errors"
	"net/http"

	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	if err := h.svc.Signup(input); err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Account created successfully"})
}

// The three login endpoints share one flow; each only accepts accounts of
// its own role.
func (h *UserHandler) UserLogin(c *gin.Context)       { h.login(c, user.RoleUser) }
func (h *UserHandler) CSCLogin(c *gin.Context)        { h.login(c, user.RoleCSC) }
func (h *UserHandler) TechnicianLogin(c *gin.Context) { h.login(c, user.RoleTechnician) }

func (h *UserHandler) login(c *gin.Context, role user.Role) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	usr, token, err := h.svc.Login(input.Username, input.Password, role)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		Role:     string(usr.Role),
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out successfully"})
}
