package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Login verifies credentials and opens a session
func (h *AccountHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUsername, account.Username)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": dto.ToAccountDTO(*account)})
}

// Logout clears the session
func (h *AccountHandler) Logout(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	if err := h.accountService.Logout(username); err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to clear session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ListAccounts returns every account
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	dtos := make([]dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		dtos = append(dtos, dto.ToAccountDTO(account))
	}
	c.JSON(http.StatusOK, gin.H{"accounts": dtos})
}

// GetAccount returns an account by ID
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	account, err := h.accountService.GetAccount(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": dto.ToAccountDTO(*account)})
}

// UpdatePassword lets the account holder change their password
func (h *AccountHandler) UpdatePassword(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.accountService.UpdatePassword(id, req.Password, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// ResetPassword generates new credentials for the target account. Admin only.
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, password, err := h.accountService.ResetPassword(id, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"credentials": dto.CredentialsDTO{
			Username: account.Username,
			Password: password,
		},
	})
}
