package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/models"
	"github.com/blance-app/blance_backend/internal/utils/mapping"
)

// PgxFxRateRepository implements the ports FxRateRepositoryFacade using pgxpool.
type PgxFxRateRepository struct {
	BaseRepository
}

func newPgxFxRateRepository(db *pgxpool.Pool) *PgxFxRateRepository {
	return &PgxFxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindLatestRate retrieves the newest rate row for (provider, base).
func (r *PgxFxRateRepository) FindLatestRate(ctx context.Context, provider, base string) (*domain.FxRateRow, error) {
	query := `
		SELECT provider, rate_date, base, rates, created_at
		FROM fx_rates
		WHERE provider = $1 AND base = $2
		ORDER BY rate_date DESC
		LIMIT 1`

	var m models.FxRate
	err := r.Pool.QueryRow(ctx, query, provider, strings.ToUpper(base)).Scan(
		&m.Provider, &m.RateDate, &m.Base, &m.Rates, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rates stored for provider and base")
		}
		return nil, apperrors.NewAppError(500, "failed to find latest fx rate", err)
	}

	row, err := mapping.ToDomainFxRate(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode stored fx rates", err)
	}
	return &row, nil
}

// UpsertRate inserts the row, leaving any existing row for the same
// (provider, rate_date, base) untouched so concurrent writers are idempotent.
func (r *PgxFxRateRepository) UpsertRate(ctx context.Context, row domain.FxRateRow) error {
	m, err := mapping.ToModelFxRate(row)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode fx rates", err)
	}

	query := `
		INSERT INTO fx_rates (provider, rate_date, base, rates, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, rate_date, base) DO NOTHING`

	_, err = r.Pool.Exec(ctx, query, m.Provider, m.RateDate, strings.ToUpper(m.Base), m.Rates, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert fx rate", err)
	}
	return nil
}
