// Package finance computes the derived financial figures shown on the
// dashboard and finance screens. Everything here is a pure function over
// in-memory snapshots: no mutation, no I/O, safe to call repeatedly.
package finance

import (
	"strings"
	"time"

	"github.com/seogestao/condogest/internal/domain/models"
)

// Two different reserve percentages exist on purpose: the dashboard shows 12%
// of the current balance while the finance screen shows the legal 10% of
// income. They are kept as distinct named rates rather than merged, since
// merging would silently change displayed figures.
const (
	DashboardReserveRate = 0.12
	LegalReserveRate     = 0.10
)

// TotalIncome sums the amounts of all INCOME movements.
func TotalIncome(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == models.TransactionIncome {
			total += t.Amount
		}
	}
	return total
}

// TotalExpense sums the amounts of all EXPENSE movements.
func TotalExpense(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == models.TransactionExpense {
			total += t.Amount
		}
	}
	return total
}

// TotalBalance is income minus expenses. May be negative.
func TotalBalance(transactions []models.Transaction) float64 {
	return TotalIncome(transactions) - TotalExpense(transactions)
}

// ReserveFromBalance is the dashboard's reserve-fund estimate.
func ReserveFromBalance(balance float64) float64 {
	return balance * DashboardReserveRate
}

// LegalReserve is the finance screen's reserve-fund figure, 10% of income.
func LegalReserve(totalIncome float64) float64 {
	return totalIncome * LegalReserveRate
}

// VATTotal sums the VAT paid on EXPENSE movements carrying the given rate.
// Income movements and other rates contribute nothing.
func VATTotal(transactions []models.Transaction, rate int) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == models.TransactionExpense && t.IVARate == rate {
			total += t.Amount * float64(rate) / 100
		}
	}
	return total
}

// IRSRetentionTotal sums movements whose category or description contains
// "irs", case-insensitively. The substring match mirrors how retentions are
// tagged in the ledger; there is no typed flag for them.
func IRSRetentionTotal(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Category), "irs") ||
			strings.Contains(strings.ToLower(t.Description), "irs") {
			total += t.Amount
		}
	}
	return total
}

// PendingFractionCount counts fractions whose quotas are not fully paid.
func PendingFractionCount(fractions []models.Fraction) int {
	var count int
	for _, f := range fractions {
		if f.Status != models.PaymentPaid {
			count++
		}
	}
	return count
}

// StatusBucket is one named payment-status count.
type StatusBucket struct {
	Status models.PaymentStatus `json:"status"`
	Count  int                  `json:"count"`
}

// StatusBuckets groups fractions by payment status in fixed order
// (PAID, PENDING, OVERDUE). Empty buckets are still present.
func StatusBuckets(fractions []models.Fraction) []StatusBucket {
	order := []models.PaymentStatus{models.PaymentPaid, models.PaymentPending, models.PaymentOverdue}

	counts := make(map[models.PaymentStatus]int, len(order))
	for _, f := range fractions {
		counts[f.Status]++
	}

	buckets := make([]StatusBucket, 0, len(order))
	for _, s := range order {
		buckets = append(buckets, StatusBucket{Status: s, Count: counts[s]})
	}
	return buckets
}

// MonthEntry is one month's income/expense pair in the yearly series.
type MonthEntry struct {
	Month   time.Month `json:"month"`
	Income  float64    `json:"income"`
	Expense float64    `json:"expense"`
}

// MonthlySeries buckets the given year's transactions by calendar month.
// The result always has exactly 12 entries, January through December;
// transactions outside the year or with unparseable dates are ignored.
func MonthlySeries(transactions []models.Transaction, year int) []MonthEntry {
	series := make([]MonthEntry, 12)
	for i := range series {
		series[i].Month = time.Month(i + 1)
	}

	for _, t := range transactions {
		d, ok := parseDate(t.Date)
		if !ok || d.Year() != year {
			continue
		}
		idx := int(d.Month()) - 1
		switch t.Type {
		case models.TransactionIncome:
			series[idx].Income += t.Amount
		case models.TransactionExpense:
			series[idx].Expense += t.Amount
		}
	}

	return series
}

func parseDate(value string) (time.Time, bool) {
	if len(value) >= 10 {
		if d, err := time.Parse("2006-01-02", value[:10]); err == nil {
			return d, true
		}
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d, true
	}
	return time.Time{}, false
}
