package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

func setupAccountService(t *testing.T) (*gorm.DB, *AccountService) {
	t.Helper()
	db := setupTestDB(t)
	auditService := NewAuditService(repository.NewAuditRepository(db))
	return db, NewAccountService(repository.NewAccountRepository(db), auditService)
}

func seedAccount(t *testing.T, db *gorm.DB, username, password string) *models.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.Account{Username: username, PasswordHash: string(hash), DefaultPassword: true}
	require.NoError(t, db.Create(account).Error)
	return account
}

func TestAccountService_Login(t *testing.T) {
	db, service := setupAccountService(t)
	seedAccount(t, db, "john.smith", "hunter22")

	account, err := service.Login("john.smith", "hunter22")
	require.NoError(t, err)
	require.True(t, account.Authenticated)
	require.NotNil(t, account.SessionToken)
	require.NotNil(t, account.LastLogin)
}

func TestAccountService_LoginTrimsUsername(t *testing.T) {
	db, service := setupAccountService(t)
	seedAccount(t, db, "john.smith", "hunter22")

	_, err := service.Login("  john.smith  ", "hunter22")
	require.NoError(t, err)
}

func TestAccountService_LoginWrongPassword(t *testing.T) {
	db, service := setupAccountService(t)
	seedAccount(t, db, "john.smith", "hunter22")

	_, err := service.Login("john.smith", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("nobody", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_Logout(t *testing.T) {
	db, service := setupAccountService(t)
	seedAccount(t, db, "john.smith", "hunter22")

	account, err := service.Login("john.smith", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, account.SessionToken)

	require.NoError(t, service.Logout("john.smith"))

	reloaded, err := service.GetAccount(account.ID)
	require.NoError(t, err)
	require.Nil(t, reloaded.SessionToken)
	require.False(t, reloaded.Authenticated)
}

func TestAccountService_UpdatePassword(t *testing.T) {
	db, service := setupAccountService(t)
	account := seedAccount(t, db, "john.smith", "hunter22")

	require.ErrorIs(t, service.UpdatePassword(account.ID, "short", "john.smith"), ErrPasswordTooShort)

	require.NoError(t, service.UpdatePassword(account.ID, "longenough", "john.smith"))

	reloaded, err := service.GetAccount(account.ID)
	require.NoError(t, err)
	require.False(t, reloaded.DefaultPassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.PasswordHash), []byte("longenough")))
}

func TestAccountService_ResetPasswordAdminOnly(t *testing.T) {
	db, service := setupAccountService(t)
	account := seedAccount(t, db, "john.smith", "hunter22")

	_, _, err := service.ResetPassword(account.ID, "john.smith")
	require.ErrorIs(t, err, ErrResetNotPermitted)

	reset, password, err := service.ResetPassword(account.ID, "admin")
	require.NoError(t, err)
	require.Len(t, password, 10)
	require.True(t, reset.DefaultPassword)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(reset.PasswordHash), []byte(password)))
	require.EqualValues(t, 1, countAuditEntries(t, db, "Reset password for account john.smith"))
}

func TestAccountService_ResetPasswordMissingAccount(t *testing.T) {
	_, service := setupAccountService(t)

	_, _, err := service.ResetPassword(99999, "admin")
	require.ErrorIs(t, err, ErrAccountNotFound)
}
