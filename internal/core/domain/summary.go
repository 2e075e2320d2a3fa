package domain

// CurrencyTotals accumulates minor-unit sums for a single currency.
type CurrencyTotals struct {
	CurrencyCode     string `json:"currencyCode"`
	GrossIncomeMinor int64  `json:"grossIncomeMinor"`
	NetIncomeMinor   int64  `json:"netIncomeMinor"`
	ExpenseMinor     int64  `json:"expenseMinor"`
	TaxPaidMinor     int64  `json:"taxPaidMinor"`
	NetFlowMinor     int64  `json:"netFlowMinor"`
}

// MonthlySummary is one dashboard month aggregated per recorded currency and
// converted into the requested display currency.
type MonthlySummary struct {
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	DisplayCurrency string           `json:"displayCurrency"`
	PerCurrency     []CurrencyTotals `json:"perCurrency"`
	Converted       CurrencyTotals   `json:"converted"` // in DisplayCurrency
	RateDate        string           `json:"rateDate"`  // business day of the rates used
}

// CategoryTotal is one category's converted expense or income in a window.
type CategoryTotal struct {
	Category       string `json:"category"`
	IsExpense      bool   `json:"isExpense"`
	ConvertedMinor int64  `json:"convertedMinor"`
}

// AccountBalance is the lifetime converted net flow of one account.
type AccountBalance struct {
	Account        string `json:"account"`
	ConvertedMinor int64  `json:"convertedMinor"`
}
