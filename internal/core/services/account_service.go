package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	"github.com/blance-app/blance_backend/internal/dto"
)

// accountService manages a user's named accounts. Accounts are always
// scoped to their owner; shares grant no access here.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) *accountService {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount adds an active account for the user. Names are unique per
// user case-insensitively.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.UserAccount, error) {
	name := strings.TrimSpace(req.AccountName)
	if name == "" {
		return nil, fmt.Errorf("%w: account name cannot be blank", apperrors.ErrValidation)
	}

	existing, err := s.accountRepo.ListAccountsByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	for _, a := range existing {
		if strings.EqualFold(a.AccountName, name) {
			return nil, fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	now := time.Now()
	account := domain.UserAccount{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		AccountName: name,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}
	return &account, nil
}

// ListAccounts returns the user's accounts, optionally active only.
func (s *accountService) ListAccounts(ctx context.Context, userID string, activeOnly bool) ([]domain.UserAccount, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount renames the account or toggles its active flag. Deactivation
// is the delete path; rows referenced by transactions are never removed.
func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.UserAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("finding account %s: %w", accountID, err)
	}
	if account.UserID != userID {
		return nil, fmt.Errorf("%w: account belongs to another user", apperrors.ErrForbidden)
	}

	account.AccountName = strings.TrimSpace(req.AccountName)
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}
	return account, nil
}
