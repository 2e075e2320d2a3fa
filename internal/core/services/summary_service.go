package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

const summaryPageSize = 200

// summaryService aggregates dashboard transactions into reporting views.
// Totals are first accumulated per recorded currency in integer minor units
// and only converted at the end, so intra-currency sums carry no rounding.
type summaryService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	fxService  portssvc.FxSvcFacade
	authorizer portssvc.DashboardAuthorizerSvc
}

// NewSummaryService creates a new summary service.
func NewSummaryService(txnRepo portsrepo.TransactionRepositoryFacade, fxService portssvc.FxSvcFacade, authorizer portssvc.DashboardAuthorizerSvc) *summaryService {
	return &summaryService{
		txnRepo:    txnRepo,
		fxService:  fxService,
		authorizer: authorizer,
	}
}

func displayOrDefault(display string) string {
	if display == "" {
		return domain.DefaultBaseCurrency
	}
	return strings.ToUpper(display)
}

// collectTransactions pages through all of ownerID's transactions matching
// the filter.
func (s *summaryService) collectTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var all []domain.Transaction
	token := ""
	for {
		txns, next, err := s.txnRepo.ListTransactions(ctx, ownerID, filter, summaryPageSize, token)
		if err != nil {
			return nil, fmt.Errorf("listing transactions: %w", err)
		}
		all = append(all, txns...)
		if next == "" {
			return all, nil
		}
		token = next
	}
}

func monthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Repository filters are To-inclusive.
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// GetMonthlySummary totals one month per recorded currency and converts the
// grand total into the display currency.
func (s *summaryService) GetMonthlySummary(ctx context.Context, actorID, ownerID string, req dto.MonthlySummaryRequest) (*domain.MonthlySummary, error) {
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, ownerID, false); err != nil {
		return nil, err
	}
	display := displayOrDefault(req.DisplayCurrency)

	from, to := monthWindow(req.Year, req.Month)
	txns, err := s.collectTransactions(ctx, ownerID, domain.TransactionFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	byCurrency := map[string]*domain.CurrencyTotals{}
	for _, t := range txns {
		totals, ok := byCurrency[t.CurrencyCode]
		if !ok {
			totals = &domain.CurrencyTotals{CurrencyCode: t.CurrencyCode}
			byCurrency[t.CurrencyCode] = totals
		}
		totals.GrossIncomeMinor += t.GrossIncomeMinor
		totals.NetIncomeMinor += t.NetIncomeMinor
		totals.ExpenseMinor += t.ExpenseMinor
		totals.TaxPaidMinor += t.TaxPaidMinor
		totals.NetFlowMinor += t.NetFlowMinor()
	}

	summary := domain.MonthlySummary{
		Year:            req.Year,
		Month:           req.Month,
		DisplayCurrency: display,
		Converted:       domain.CurrencyTotals{CurrencyCode: display},
	}
	for _, code := range sortedKeys(byCurrency) {
		totals := byCurrency[code]
		summary.PerCurrency = append(summary.PerCurrency, *totals)

		rateDate, err := s.addConverted(ctx, &summary.Converted, *totals, display)
		if err != nil {
			return nil, err
		}
		if rateDate != "" {
			summary.RateDate = rateDate
		}
	}
	return &summary, nil
}

// addConverted converts one currency's totals into the display currency and
// accumulates them. Returns the rate date used, empty for identity.
func (s *summaryService) addConverted(ctx context.Context, acc *domain.CurrencyTotals, totals domain.CurrencyTotals, display string) (string, error) {
	var rateDate string
	convert := func(v int64) (int64, error) {
		if v == 0 {
			return 0, nil
		}
		converted, rd, err := s.fxService.ConvertMinor(ctx, v, totals.CurrencyCode, display)
		if err != nil {
			return 0, fmt.Errorf("converting %s totals: %w", totals.CurrencyCode, err)
		}
		if rd != "" {
			rateDate = rd
		}
		return converted, nil
	}

	var err error
	var v int64
	if v, err = convert(totals.GrossIncomeMinor); err != nil {
		return "", err
	}
	acc.GrossIncomeMinor += v
	if v, err = convert(totals.NetIncomeMinor); err != nil {
		return "", err
	}
	acc.NetIncomeMinor += v
	if v, err = convert(totals.ExpenseMinor); err != nil {
		return "", err
	}
	acc.ExpenseMinor += v
	if v, err = convert(totals.TaxPaidMinor); err != nil {
		return "", err
	}
	acc.TaxPaidMinor += v
	acc.NetFlowMinor = acc.NetIncomeMinor - acc.ExpenseMinor
	return rateDate, nil
}

func sortedKeys(m map[string]*domain.CurrencyTotals) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetCategoryBreakdown sums one month's converted amounts per category.
// Expense categories report expense totals, income categories net income.
func (s *summaryService) GetCategoryBreakdown(ctx context.Context, actorID, ownerID string, req dto.MonthlySummaryRequest) ([]domain.CategoryTotal, string, error) {
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, ownerID, false); err != nil {
		return nil, "", err
	}
	display := displayOrDefault(req.DisplayCurrency)

	from, to := monthWindow(req.Year, req.Month)
	txns, err := s.collectTransactions(ctx, ownerID, domain.TransactionFilter{From: &from, To: &to})
	if err != nil {
		return nil, "", err
	}

	type key struct {
		category  string
		isExpense bool
	}
	sums := map[key]int64{}
	for _, t := range txns {
		amount := t.ExpenseMinor
		isExpense := true
		if amount == 0 {
			amount = t.NetIncomeMinor
			isExpense = false
		}
		if amount == 0 {
			continue
		}
		converted, _, err := s.fxService.ConvertMinor(ctx, amount, t.CurrencyCode, display)
		if err != nil {
			return nil, "", fmt.Errorf("converting category totals: %w", err)
		}
		sums[key{t.Category, isExpense}] += converted
	}

	out := make([]domain.CategoryTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, domain.CategoryTotal{Category: k.category, IsExpense: k.isExpense, ConvertedMinor: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConvertedMinor != out[j].ConvertedMinor {
			return out[i].ConvertedMinor > out[j].ConvertedMinor
		}
		return out[i].Category < out[j].Category
	})
	return out, display, nil
}

// GetAccountBalances reports the lifetime converted net flow per account.
func (s *summaryService) GetAccountBalances(ctx context.Context, actorID, ownerID, displayCurrency string) ([]domain.AccountBalance, string, error) {
	if err := s.authorizer.AuthorizeDashboardAccess(ctx, actorID, ownerID, false); err != nil {
		return nil, "", err
	}
	display := displayOrDefault(displayCurrency)

	txns, err := s.collectTransactions(ctx, ownerID, domain.TransactionFilter{})
	if err != nil {
		return nil, "", err
	}

	sums := map[string]int64{}
	for _, t := range txns {
		flow := t.NetFlowMinor()
		if flow == 0 {
			continue
		}
		converted, _, err := s.fxService.ConvertMinor(ctx, flow, t.CurrencyCode, display)
		if err != nil {
			return nil, "", fmt.Errorf("converting account balances: %w", err)
		}
		sums[t.Account] += converted
	}

	out := make([]domain.AccountBalance, 0, len(sums))
	for account, v := range sums {
		out = append(out, domain.AccountBalance{Account: account, ConvertedMinor: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out, display, nil
}
