package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/password"
	"github.com/clubsync/events-backend/internal/response"
	"github.com/clubsync/events-backend/internal/service"
)

// AuthHandler handles registration and login for both role namespaces.
type AuthHandler struct {
	accountService *service.AccountService
	authService    *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accountService *service.AccountService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		authService:    authService,
	}
}

// RegisterAdmin godoc
// POST /register
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, model.RoleAdmin, "Admin registered successfully")
}

// RegisterUser godoc
// POST /register-user
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	h.register(c, model.RoleUser, "User registered successfully")
}

// LoginAdmin godoc
// POST /login
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, model.RoleAdmin)
}

// LoginUser godoc
// POST /login-user
func (h *AuthHandler) LoginUser(c *gin.Context) {
	h.login(c, model.RoleUser)
}

func (h *AuthHandler) register(c *gin.Context, role model.Role, successMessage string) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	_, err := h.accountService.Register(c.Request.Context(), role, req.Username, req.Password)
	if err != nil {
		var policyErr *password.PolicyError
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			response.Fail(c, http.StatusBadRequest, response.ErrMissingCredentials)
		case errors.As(err, &policyErr):
			response.FailMessage(c, http.StatusBadRequest, response.ErrPasswordPolicy, policyErr.Message)
		case errors.Is(err, service.ErrUsernameTaken):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": successMessage})
}

func (h *AuthHandler) login(c *gin.Context, role model.Role) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), role, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			response.Fail(c, http.StatusBadRequest, response.ErrMissingCredentials)
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	token, err := h.authService.GenerateToken(account)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
