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
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// transactionService manages transactions with share-based authorization:
// the dashboard owner has full access, accepted editors may write, accepted
// viewers may read.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	authorizer portssvc.DashboardAuthorizerSvc
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, authorizer portssvc.DashboardAuthorizerSvc) *transactionService {
	return &transactionService{
		txnRepo:    txnRepo,
		authorizer: authorizer,
	}
}

// validateAmounts rejects rows that are both expense and income, or neither.
func validateAmounts(req dto.CreateTransactionRequest) error {
	hasExpense := req.ExpenseMinor > 0
	hasIncome := req.GrossIncomeMinor > 0 || req.NetIncomeMinor > 0
	if hasExpense && hasIncome {
		return fmt.Errorf("%w: a transaction cannot carry both expense and income amounts", apperrors.ErrValidation)
	}
	if !hasExpense && !hasIncome {
		return fmt.Errorf("%w: a transaction needs an expense or income amount", apperrors.ErrValidation)
	}
	if req.NetIncomeMinor > req.GrossIncomeMinor {
		return fmt.Errorf("%w: net income cannot exceed gross income", apperrors.ErrValidation)
	}
	return nil
}

// CreateTransaction records a transaction on ownerID's dashboard. An actor
// other than the owner needs editor access through an accepted share.
func (s *transactionService) CreateTransaction(ctx context.Context, actorID, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, ownerID, true); err != nil {
		return nil, err
	}
	if err := validateAmounts(req); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:    uuid.NewString(),
		UserID:           ownerID,
		Date:             req.Date,
		Account:          req.Account,
		Category:         req.Category,
		PaymentMethod:    req.PaymentMethod,
		Description:      req.Description,
		CurrencyCode:     strings.ToUpper(req.CurrencyCode),
		ExpenseMinor:     req.ExpenseMinor,
		GrossIncomeMinor: req.GrossIncomeMinor,
		NetIncomeMinor:   req.NetIncomeMinor,
		TaxPaidMinor:     req.TaxPaidMinor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}
	return &txn, nil
}

// GetTransaction returns a single transaction, subject to read access on the
// owning dashboard.
func (s *transactionService) GetTransaction(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("finding transaction %s: %w", transactionID, err)
	}
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, txn.UserID, false); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions pages through ownerID's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, actorID, ownerID string, req dto.ListTransactionsRequest) ([]domain.Transaction, string, error) {
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, ownerID, false); err != nil {
		return nil, "", err
	}

	filter := domain.TransactionFilter{
		From:     req.From,
		To:       req.To,
		Account:  req.Account,
		Category: req.Category,
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, ownerID, filter, limit, req.NextToken)
	if err != nil {
		return nil, "", fmt.Errorf("listing transactions: %w", err)
	}
	return txns, nextToken, nil
}

// UpdateTransaction replaces all mutable fields of the transaction. Write
// access on the owning dashboard is required.
func (s *transactionService) UpdateTransaction(ctx context.Context, actorID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("finding transaction %s: %w", transactionID, err)
	}
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, txn.UserID, true); err != nil {
		return nil, err
	}
	if err := validateAmounts(req); err != nil {
		return nil, err
	}

	txn.Date = req.Date
	txn.Account = req.Account
	txn.Category = req.Category
	txn.PaymentMethod = req.PaymentMethod
	txn.Description = req.Description
	txn.CurrencyCode = strings.ToUpper(req.CurrencyCode)
	txn.ExpenseMinor = req.ExpenseMinor
	txn.GrossIncomeMinor = req.GrossIncomeMinor
	txn.NetIncomeMinor = req.NetIncomeMinor
	txn.TaxPaidMinor = req.TaxPaidMinor
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actorID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("updating transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes the transaction. Write access on the owning
// dashboard is required.
func (s *transactionService) DeleteTransaction(ctx context.Context, actorID, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("finding transaction %s: %w", transactionID, err)
	}
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, txn.UserID, true); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}
