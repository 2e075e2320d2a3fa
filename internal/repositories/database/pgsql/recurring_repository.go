package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
)

// PgxRecurringRepository implements the ports RecurringRepositoryFacade using pgxpool.
type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(db *pgxpool.Pool) *PgxRecurringRepository {
	return &PgxRecurringRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const recurringColumns = `
	recurring_id, user_id, account, category, payment_method, description,
	currency_code, expense_minor, gross_income_minor, net_income_minor, tax_paid_minor,
	frequency, start_date, end_date, next_occurrence_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRecurring(row pgx.Row) (*domain.RecurringTransaction, error) {
	var rec domain.RecurringTransaction
	err := row.Scan(
		&rec.RecurringID, &rec.UserID, &rec.Account, &rec.Category,
		&rec.PaymentMethod, &rec.Description, &rec.CurrencyCode,
		&rec.ExpenseMinor, &rec.GrossIncomeMinor, &rec.NetIncomeMinor, &rec.TaxPaidMinor,
		&rec.Frequency, &rec.StartDate, &rec.EndDate, &rec.NextOccurrenceDate, &rec.IsActive,
		&rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRecurringByID retrieves a recurring template by id.
func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error) {
	query := `SELECT` + recurringColumns + ` FROM recurring_transactions WHERE recurring_id = $1`

	rec, err := scanRecurring(r.Pool.QueryRow(ctx, query, recurringID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("recurring transaction not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find recurring transaction", err)
	}
	return rec, nil
}

func (r *PgxRecurringRepository) queryRecurring(ctx context.Context, query string, args ...any) ([]domain.RecurringTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recurring transactions", err)
	}
	defer rows.Close()

	var recs []domain.RecurringTransaction
	for rows.Next() {
		var rec domain.RecurringTransaction
		err := rows.Scan(
			&rec.RecurringID, &rec.UserID, &rec.Account, &rec.Category,
			&rec.PaymentMethod, &rec.Description, &rec.CurrencyCode,
			&rec.ExpenseMinor, &rec.GrossIncomeMinor, &rec.NetIncomeMinor, &rec.TaxPaidMinor,
			&rec.Frequency, &rec.StartDate, &rec.EndDate, &rec.NextOccurrenceDate, &rec.IsActive,
			&rec.CreatedAt, &rec.CreatedBy, &rec.LastUpdatedAt, &rec.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recurring row", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating recurring rows", err)
	}
	return recs, nil
}

// ListRecurringByUser returns the user's templates, newest first.
func (r *PgxRecurringRepository) ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error) {
	query := `SELECT` + recurringColumns + ` FROM recurring_transactions WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryRecurring(ctx, query, userID)
}

// ListDueRecurring returns active templates due at or before asOf, oldest
// first, so the worker catches up the most overdue schedules before the rest.
func (r *PgxRecurringRepository) ListDueRecurring(ctx context.Context, asOf time.Time, limit int) ([]domain.RecurringTransaction, error) {
	query := `SELECT` + recurringColumns + `
		FROM recurring_transactions
		WHERE is_active AND next_occurrence_date <= $1
		ORDER BY next_occurrence_date
		LIMIT $2`
	return r.queryRecurring(ctx, query, asOf, limit)
}

// SaveRecurring persists a new recurring template.
func (r *PgxRecurringRepository) SaveRecurring(ctx context.Context, recurring domain.RecurringTransaction) error {
	query := `
		INSERT INTO recurring_transactions (
			recurring_id, user_id, account, category, payment_method, description,
			currency_code, expense_minor, gross_income_minor, net_income_minor, tax_paid_minor,
			frequency, start_date, end_date, next_occurrence_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.Pool.Exec(ctx, query,
		recurring.RecurringID, recurring.UserID, recurring.Account, recurring.Category,
		recurring.PaymentMethod, recurring.Description, recurring.CurrencyCode,
		recurring.ExpenseMinor, recurring.GrossIncomeMinor, recurring.NetIncomeMinor, recurring.TaxPaidMinor,
		recurring.Frequency, recurring.StartDate, recurring.EndDate, recurring.NextOccurrenceDate, recurring.IsActive,
		recurring.CreatedAt, recurring.CreatedBy, recurring.LastUpdatedAt, recurring.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save recurring transaction", err)
	}
	return nil
}

const updateRecurringQuery = `
	UPDATE recurring_transactions SET
		account = $1, category = $2, payment_method = $3, description = $4,
		currency_code = $5, expense_minor = $6, gross_income_minor = $7,
		net_income_minor = $8, tax_paid_minor = $9,
		end_date = $10, next_occurrence_date = $11, is_active = $12,
		last_updated_at = $13, last_updated_by = $14
	WHERE recurring_id = $15`

// UpdateRecurring updates a template's mutable fields and schedule position.
func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, recurring domain.RecurringTransaction) error {
	tag, err := r.Pool.Exec(ctx, updateRecurringQuery,
		recurring.Account, recurring.Category, recurring.PaymentMethod, recurring.Description,
		recurring.CurrencyCode, recurring.ExpenseMinor, recurring.GrossIncomeMinor,
		recurring.NetIncomeMinor, recurring.TaxPaidMinor,
		recurring.EndDate, recurring.NextOccurrenceDate, recurring.IsActive,
		recurring.LastUpdatedAt, recurring.LastUpdatedBy, recurring.RecurringID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update recurring transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring transaction not found")
	}
	return nil
}

// SaveOccurrence inserts a materialized transaction and persists the advanced
// schedule atomically. Both rows commit together or not at all, so the worker
// never re-books an occurrence it already wrote.
func (r *PgxRecurringRepository) SaveOccurrence(ctx context.Context, txn domain.Transaction, recurring domain.RecurringTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, insertTransactionQuery,
		txn.TransactionID, txn.UserID, txn.Date, txn.Account, txn.Category,
		txn.PaymentMethod, txn.Description, txn.CurrencyCode,
		txn.ExpenseMinor, txn.GrossIncomeMinor, txn.NetIncomeMinor, txn.TaxPaidMinor,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	); err != nil {
		return apperrors.NewAppError(500, "failed to save materialized transaction", err)
	}

	tag, err := tx.Exec(ctx, updateRecurringQuery,
		recurring.Account, recurring.Category, recurring.PaymentMethod, recurring.Description,
		recurring.CurrencyCode, recurring.ExpenseMinor, recurring.GrossIncomeMinor,
		recurring.NetIncomeMinor, recurring.TaxPaidMinor,
		recurring.EndDate, recurring.NextOccurrenceDate, recurring.IsActive,
		recurring.LastUpdatedAt, recurring.LastUpdatedBy, recurring.RecurringID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to advance recurring schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring transaction not found")
	}

	return r.Commit(ctx, tx)
}

// DeleteRecurring removes a template.
func (r *PgxRecurringRepository) DeleteRecurring(ctx context.Context, recurringID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_transactions WHERE recurring_id = $1`, recurringID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete recurring transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring transaction not found")
	}
	return nil
}
