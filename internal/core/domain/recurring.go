package domain

import "time"

// RecurrenceFrequency is how often a recurring transaction materializes.
type RecurrenceFrequency string

const (
	FrequencyDaily     RecurrenceFrequency = "daily"
	FrequencyWeekly    RecurrenceFrequency = "weekly"
	FrequencyBiweekly  RecurrenceFrequency = "biweekly"
	FrequencyMonthly   RecurrenceFrequency = "monthly"
	FrequencyQuarterly RecurrenceFrequency = "quarterly"
	FrequencyYearly    RecurrenceFrequency = "yearly"
)

// IsValid reports whether f is a known frequency.
func (f RecurrenceFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// NextAfter advances an occurrence date by one interval. Month-based
// frequencies anchor on the start date's day-of-month and clamp to the last
// day of shorter months, so a Jan 31 monthly schedule yields Feb 28/29,
// Mar 31, and so on instead of drifting.
func (f RecurrenceFrequency) NextAfter(current, start time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return current.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return current.AddDate(0, 0, 14)
	case FrequencyQuarterly:
		return addMonthsClamped(current, 3, start.Day())
	case FrequencyYearly:
		return addMonthsClamped(current, 12, start.Day())
	default: // monthly
		return addMonthsClamped(current, 1, start.Day())
	}
}

// addMonthsClamped moves forward by months, restoring the anchor day when the
// target month is long enough and clamping to its last day otherwise.
func addMonthsClamped(t time.Time, months, anchorDay int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := anchorDay
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// RecurringTransaction is a template that the recurring worker materializes
// into real transactions whenever NextOccurrenceDate comes due.
type RecurringTransaction struct {
	RecurringID        string              `json:"recurringID"`
	UserID             string              `json:"userID"`
	Account            string              `json:"account"`
	Category           string              `json:"category"`
	PaymentMethod      string              `json:"paymentMethod"`
	Description        string              `json:"description"`
	CurrencyCode       string              `json:"currencyCode"`
	ExpenseMinor       int64               `json:"expenseMinor"`
	GrossIncomeMinor   int64               `json:"grossIncomeMinor"`
	NetIncomeMinor     int64               `json:"netIncomeMinor"`
	TaxPaidMinor       int64               `json:"taxPaidMinor"`
	Frequency          RecurrenceFrequency `json:"frequency"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            *time.Time          `json:"endDate,omitempty"`
	NextOccurrenceDate time.Time           `json:"nextOccurrenceDate"`
	IsActive           bool                `json:"isActive"`
	AuditFields
}

// IsDue reports whether the template should materialize at the given time.
func (r RecurringTransaction) IsDue(now time.Time) bool {
	return r.IsActive && !r.NextOccurrenceDate.After(now)
}

// Expired reports whether the schedule has run past its end date.
func (r RecurringTransaction) Expired(next time.Time) bool {
	return r.EndDate != nil && next.After(*r.EndDate)
}
