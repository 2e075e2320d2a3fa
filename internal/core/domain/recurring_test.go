package domain_test

import (
	"testing"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextAfter_SimpleIntervals(t *testing.T) {
	start := date(2025, time.March, 10)
	assert.Equal(t, date(2025, time.March, 11), domain.FrequencyDaily.NextAfter(date(2025, time.March, 10), start))
	assert.Equal(t, date(2025, time.March, 17), domain.FrequencyWeekly.NextAfter(date(2025, time.March, 10), start))
	assert.Equal(t, date(2025, time.March, 24), domain.FrequencyBiweekly.NextAfter(date(2025, time.March, 10), start))
}

func TestNextAfter_MonthlyClampsToMonthEnd(t *testing.T) {
	start := date(2025, time.January, 31)

	next := domain.FrequencyMonthly.NextAfter(start, start)
	assert.Equal(t, date(2025, time.February, 28), next)

	// the anchor day is restored once the month is long enough again
	next = domain.FrequencyMonthly.NextAfter(next, start)
	assert.Equal(t, date(2025, time.March, 31), next)
}

func TestNextAfter_MonthlyLeapYear(t *testing.T) {
	start := date(2024, time.January, 30)
	next := domain.FrequencyMonthly.NextAfter(start, start)
	assert.Equal(t, date(2024, time.February, 29), next)
}

func TestNextAfter_QuarterlyAndYearly(t *testing.T) {
	start := date(2025, time.November, 30)
	assert.Equal(t, date(2026, time.February, 28), domain.FrequencyQuarterly.NextAfter(start, start))

	leapStart := date(2024, time.February, 29)
	assert.Equal(t, date(2025, time.February, 28), domain.FrequencyYearly.NextAfter(leapStart, leapStart))
}

func TestRecurring_IsDueAndExpired(t *testing.T) {
	now := date(2025, time.June, 15)
	r := domain.RecurringTransaction{
		IsActive:           true,
		NextOccurrenceDate: date(2025, time.June, 15),
	}
	assert.True(t, r.IsDue(now))

	r.NextOccurrenceDate = date(2025, time.June, 16)
	assert.False(t, r.IsDue(now))

	r.IsActive = false
	r.NextOccurrenceDate = date(2025, time.June, 1)
	assert.False(t, r.IsDue(now), "inactive templates never come due")

	end := date(2025, time.June, 30)
	r.EndDate = &end
	assert.False(t, r.Expired(date(2025, time.June, 30)))
	assert.True(t, r.Expired(date(2025, time.July, 1)))
}
