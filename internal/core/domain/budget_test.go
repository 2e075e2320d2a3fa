package domain_test

import (
	"testing"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBudgetPeriod_Window(t *testing.T) {
	// Wednesday 2025-06-18
	ref := time.Date(2025, time.June, 18, 13, 45, 0, 0, time.UTC)

	start, end := domain.BudgetPeriodWeekly.Window(ref)
	assert.Equal(t, date(2025, time.June, 16), start, "weeks start on Monday")
	assert.Equal(t, date(2025, time.June, 23), end)

	start, end = domain.BudgetPeriodMonthly.Window(ref)
	assert.Equal(t, date(2025, time.June, 1), start)
	assert.Equal(t, date(2025, time.July, 1), end)

	start, end = domain.BudgetPeriodYearly.Window(ref)
	assert.Equal(t, date(2025, time.January, 1), start)
	assert.Equal(t, date(2026, time.January, 1), end)
}

func TestBudgetPeriod_WeeklyWindowOnSunday(t *testing.T) {
	// Sunday 2025-06-22 still belongs to the week of Monday 2025-06-16
	sunday := time.Date(2025, time.June, 22, 8, 0, 0, 0, time.UTC)
	start, end := domain.BudgetPeriodWeekly.Window(sunday)
	assert.Equal(t, date(2025, time.June, 16), start)
	assert.Equal(t, date(2025, time.June, 23), end)
}

func TestBudgetPeriod_IsValid(t *testing.T) {
	assert.True(t, domain.BudgetPeriodMonthly.IsValid())
	assert.False(t, domain.BudgetPeriod("daily").IsValid())
}
