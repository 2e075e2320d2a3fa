package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/utils/pagination"
)

// PgxTransactionRepository implements the ports TransactionRepositoryFacade using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const transactionColumns = `
	transaction_id, user_id, date, account, category, payment_method, description,
	currency_code, expense_minor, gross_income_minor, net_income_minor, tax_paid_minor,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID, &t.UserID, &t.Date, &t.Account, &t.Category,
		&t.PaymentMethod, &t.Description, &t.CurrencyCode,
		&t.ExpenseMinor, &t.GrossIncomeMinor, &t.NetIncomeMinor, &t.TaxPaidMinor,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction", err)
	}
	return txn, nil
}

// ListTransactions returns the owner's transactions matching the filter,
// ordered by (date, created_at) descending, one page at a time. The returned
// token is empty when no further pages exist.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, limit int, nextToken string) ([]domain.Transaction, string, error) {
	query := `SELECT` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Account != nil {
		args = append(args, *filter.Account)
		query += fmt.Sprintf(" AND account = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if nextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError(err.Error())
		}
		args = append(args, cursorDate, cursorCreatedAt)
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.TransactionID, &t.UserID, &t.Date, &t.Account, &t.Category,
			&t.PaymentMethod, &t.Description, &t.CurrencyCode,
			&t.ExpenseMinor, &t.GrossIncomeMinor, &t.NetIncomeMinor, &t.TaxPaidMinor,
			&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
		)
		if err != nil {
			return nil, "", apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, "", apperrors.NewAppError(500, "failed iterating transaction rows", err)
	}

	token := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return txns, token, nil
}

// insertTransactionQuery is shared with the recurring repository, which
// inserts materialized transactions inside its own database transaction.
const insertTransactionQuery = `
	INSERT INTO transactions (
		transaction_id, user_id, date, account, category, payment_method, description,
		currency_code, expense_minor, gross_income_minor, net_income_minor, tax_paid_minor,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		txn.TransactionID, txn.UserID, txn.Date, txn.Account, txn.Category,
		txn.PaymentMethod, txn.Description, txn.CurrencyCode,
		txn.ExpenseMinor, txn.GrossIncomeMinor, txn.NetIncomeMinor, txn.TaxPaidMinor,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction", err)
	}
	return nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions SET
			date = $1, account = $2, category = $3, payment_method = $4, description = $5,
			currency_code = $6, expense_minor = $7, gross_income_minor = $8,
			net_income_minor = $9, tax_paid_minor = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $13`

	tag, err := r.Pool.Exec(ctx, query,
		txn.Date, txn.Account, txn.Category, txn.PaymentMethod, txn.Description,
		txn.CurrencyCode, txn.ExpenseMinor, txn.GrossIncomeMinor,
		txn.NetIncomeMinor, txn.TaxPaidMinor,
		txn.LastUpdatedAt, txn.LastUpdatedBy, txn.TransactionID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}
