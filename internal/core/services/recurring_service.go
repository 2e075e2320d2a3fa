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

// recurringService manages recurring transaction templates and materializes
// due ones into real transactions.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepositoryFacade
}

// NewRecurringService creates a new recurring transaction service.
func NewRecurringService(recurringRepo portsrepo.RecurringRepositoryFacade) *recurringService {
	return &recurringService{
		recurringRepo: recurringRepo,
	}
}

// CreateRecurring registers a template. The first occurrence is the start
// date itself.
func (s *recurringService) CreateRecurring(ctx context.Context, userID string, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error) {
	freq := domain.RecurrenceFrequency(req.Frequency)
	if !freq.IsValid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, req.Frequency)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidation)
	}
	if req.ExpenseMinor == 0 && req.GrossIncomeMinor == 0 && req.NetIncomeMinor == 0 {
		return nil, fmt.Errorf("%w: a template needs an expense or income amount", apperrors.ErrValidation)
	}

	now := time.Now()
	recurring := domain.RecurringTransaction{
		RecurringID:        uuid.NewString(),
		UserID:             userID,
		Account:            req.Account,
		Category:           req.Category,
		PaymentMethod:      req.PaymentMethod,
		Description:        req.Description,
		CurrencyCode:       strings.ToUpper(req.CurrencyCode),
		ExpenseMinor:       req.ExpenseMinor,
		GrossIncomeMinor:   req.GrossIncomeMinor,
		NetIncomeMinor:     req.NetIncomeMinor,
		TaxPaidMinor:       req.TaxPaidMinor,
		Frequency:          freq,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		NextOccurrenceDate: req.StartDate,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.recurringRepo.SaveRecurring(ctx, recurring); err != nil {
		return nil, fmt.Errorf("saving recurring template: %w", err)
	}
	return &recurring, nil
}

// ListRecurring returns all of the user's templates.
func (s *recurringService) ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	recs, err := s.recurringRepo.ListRecurringByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recurring templates: %w", err)
	}
	return recs, nil
}

// UpdateRecurring replaces a template's mutable fields. The start date and
// frequency anchor the schedule and stay fixed.
func (s *recurringService) UpdateRecurring(ctx context.Context, userID, recurringID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error) {
	rec, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return nil, fmt.Errorf("finding recurring template %s: %w", recurringID, err)
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("%w: template belongs to another user", apperrors.ErrForbidden)
	}
	if req.EndDate != nil && req.EndDate.Before(rec.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidation)
	}

	rec.Account = req.Account
	rec.Category = req.Category
	rec.PaymentMethod = req.PaymentMethod
	rec.Description = req.Description
	rec.CurrencyCode = strings.ToUpper(req.CurrencyCode)
	rec.ExpenseMinor = req.ExpenseMinor
	rec.GrossIncomeMinor = req.GrossIncomeMinor
	rec.NetIncomeMinor = req.NetIncomeMinor
	rec.TaxPaidMinor = req.TaxPaidMinor
	rec.EndDate = req.EndDate
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	rec.LastUpdatedAt = time.Now()
	rec.LastUpdatedBy = userID

	if err := s.recurringRepo.UpdateRecurring(ctx, *rec); err != nil {
		return nil, fmt.Errorf("updating recurring template: %w", err)
	}
	return rec, nil
}

// DeleteRecurring removes the template. Materialized transactions stay.
func (s *recurringService) DeleteRecurring(ctx context.Context, userID, recurringID string) error {
	rec, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return fmt.Errorf("finding recurring template %s: %w", recurringID, err)
	}
	if rec.UserID != userID {
		return fmt.Errorf("%w: template belongs to another user", apperrors.ErrForbidden)
	}
	if err := s.recurringRepo.DeleteRecurring(ctx, recurringID); err != nil {
		return fmt.Errorf("deleting recurring template: %w", err)
	}
	return nil
}

// ProcessDueRecurring materializes up to batchSize due templates into
// transactions. A template whose schedule catches up past its end date is
// deactivated. One failing template is logged and skipped so the rest of the
// batch still runs.
func (s *recurringService) ProcessDueRecurring(ctx context.Context, now time.Time, batchSize int) (int, error) {
	due, err := s.recurringRepo.ListDueRecurring(ctx, now, batchSize)
	if err != nil {
		return 0, fmt.Errorf("listing due templates: %w", err)
	}

	processed := 0
	for _, rec := range due {
		if !rec.IsDue(now) {
			continue
		}
		if err := s.materialize(ctx, rec, now); err != nil {
			s.LogError(ctx, err, "failed to process recurring template", "recurring_id", rec.RecurringID)
			continue
		}
		processed++
	}
	return processed, nil
}

// materialize books one transaction per elapsed occurrence. A long-dormant
// template catches up occurrence by occurrence, so nothing is silently
// skipped. Each occurrence commits together with its schedule advance; a
// failure mid-catch-up leaves the template pointing at the first unbooked
// occurrence, never at one already written.
func (s *recurringService) materialize(ctx context.Context, rec domain.RecurringTransaction, now time.Time) error {
	for !rec.NextOccurrenceDate.After(now) {
		occurrence := rec.NextOccurrenceDate
		txn := domain.Transaction{
			TransactionID:    uuid.NewString(),
			UserID:           rec.UserID,
			Date:             occurrence,
			Account:          rec.Account,
			Category:         rec.Category,
			PaymentMethod:    rec.PaymentMethod,
			Description:      rec.Description,
			CurrencyCode:     rec.CurrencyCode,
			ExpenseMinor:     rec.ExpenseMinor,
			GrossIncomeMinor: rec.GrossIncomeMinor,
			NetIncomeMinor:   rec.NetIncomeMinor,
			TaxPaidMinor:     rec.TaxPaidMinor,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     rec.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: rec.UserID,
			},
		}

		rec.NextOccurrenceDate = rec.Frequency.NextAfter(occurrence, rec.StartDate)
		rec.LastUpdatedAt = now
		if rec.Expired(rec.NextOccurrenceDate) {
			rec.IsActive = false
		}

		if err := s.recurringRepo.SaveOccurrence(ctx, txn, rec); err != nil {
			return fmt.Errorf("materializing occurrence %s: %w", occurrence.Format("2006-01-02"), err)
		}
		if !rec.IsActive {
			break
		}
	}
	return nil
}
