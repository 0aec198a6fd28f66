package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	iauth "github.com/empowerher/empowerher/internal/auth"
	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/response"
)

// AuthHandler manages registration, login and logout.
type AuthHandler struct {
	accounts *iauth.AccountService
	jwt      *iauth.JWTService
	registry *userstate.Registry
}

func NewAuthHandler(accounts *iauth.AccountService, jwt *iauth.JWTService, registry *userstate.Registry) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwt: jwt, registry: registry}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req iauth.RegisterInput
	if !bindAndValidate(c, &req) {
		return
	}

	account, err := h.accounts.Register(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwt.GenerateToken(account.ID, account.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	store := h.registry.Get(c.Request.Context(), account.ID)
	store.UpdateProfile(models.ProfileUpdate{
		FirstName: &account.FirstName,
		LastName:  &account.LastName,
		Email:     &account.Email,
	})
	store.Login()

	response.Success(c, http.StatusCreated, gin.H{
		"token":   token,
		"account": account,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	account, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwt.GenerateToken(account.ID, account.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	store := h.registry.Get(c.Request.Context(), account.ID)
	store.Login()

	response.Success(c, http.StatusOK, gin.H{
		"token":   token,
		"account": account,
	})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	store.Logout()
	h.registry.Evict(store.UserID())

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	account, err := h.accounts.GetByID(store.UserID())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"account": account,
		"profile": store.Profile(),
	})
}
