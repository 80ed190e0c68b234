package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
	"github.com/jnmnltrnz/workforce-management-api/internal/utils"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password does not meet the minimum length")
	ErrResetNotPermitted  = errors.New("only the admin account may reset passwords")
)

// AccountService handles login sessions and password management.
type AccountService struct {
	accountRepo  repository.AccountRepository
	auditService *AuditService
	now          func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo repository.AccountRepository, auditService *AuditService) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// Login verifies the credentials, issues a fresh session token and stamps the
// login time. Username lookup failures and password mismatches report the
// same error.
func (s *AccountService) Login(username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	loginAt := s.now()
	account.SessionToken = &token
	account.Authenticated = true
	account.LastLogin = &loginAt
	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account on login: %w", err)
	}
	return account, nil
}

// Logout clears the account's session token.
func (s *AccountService) Logout(username string) error {
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}
	account.SessionToken = nil
	account.Authenticated = false
	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to update account on logout: %w", err)
	}
	return nil
}

// GetAccount returns an account by ID.
func (s *AccountService) GetAccount(id uint64) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListAccounts returns every account.
func (s *AccountService) ListAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdatePassword lets an account holder set their own password, clearing the
// default-password flag.
func (s *AccountService) UpdatePassword(id uint64, newPassword, actor string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}
	account, err := s.GetAccount(id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hash)
	account.DefaultPassword = false
	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Changed password for account %s", account.Username))
	return err
}

// ResetPassword generates a fresh password for the target account and returns
// it in plain text, once. Only the admin username may call it; the check is a
// plain value comparison against the well-known admin name.
func (s *AccountService) ResetPassword(id uint64, requestedBy string) (*models.Account, string, error) {
	if requestedBy != constants.AdminUsername {
		return nil, "", ErrResetNotPermitted
	}

	account, err := s.GetAccount(id)
	if err != nil {
		return nil, "", err
	}
	password, err := utils.GenerateAlphanumeric(constants.GeneratedPasswordLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hash)
	account.DefaultPassword = true
	if err := s.accountRepo.Update(account); err != nil {
		return nil, "", fmt.Errorf("failed to reset password: %w", err)
	}
	if _, err := s.auditService.Record(requestedBy, fmt.Sprintf("Reset password for account %s", account.Username)); err != nil {
		return nil, "", err
	}
	return account, password, nil
}
