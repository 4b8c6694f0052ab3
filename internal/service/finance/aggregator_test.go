package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

func tx(t models.TransactionType, amount float64, date string) models.Transaction {
	return models.Transaction{Type: t, Amount: amount, Date: date}
}

func TestTotalBalance(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, 1200, "2024-01-05"),
		tx(models.TransactionIncome, 300, "2024-02-05"),
		tx(models.TransactionExpense, 450.50, "2024-01-20"),
	}

	assert.InDelta(t, 1500.0, TotalIncome(transactions), 1e-9)
	assert.InDelta(t, 450.50, TotalExpense(transactions), 1e-9)
	assert.InDelta(t, 1049.50, TotalBalance(transactions), 1e-9)
}

func TestTotalBalanceCanGoNegative(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, 100, "2024-01-05"),
		tx(models.TransactionExpense, 250, "2024-01-20"),
	}

	assert.InDelta(t, -150.0, TotalBalance(transactions), 1e-9)
}

func TestReserveRatesAreDistinct(t *testing.T) {
	assert.InDelta(t, 120.0, ReserveFromBalance(1000), 1e-9)
	assert.InDelta(t, 100.0, LegalReserve(1000), 1e-9)
}

func TestVATTotalFiltersTypeAndRate(t *testing.T) {
	transactions := []models.Transaction{
		{Type: models.TransactionExpense, Amount: 100, IVARate: 23},
		{Type: models.TransactionExpense, Amount: 200, IVARate: 23},
		{Type: models.TransactionExpense, Amount: 100, IVARate: 6},
		// Income never contributes VAT, regardless of rate.
		{Type: models.TransactionIncome, Amount: 1000, IVARate: 23},
	}

	assert.InDelta(t, 69.0, VATTotal(transactions, 23), 1e-9)
	assert.InDelta(t, 6.0, VATTotal(transactions, 6), 1e-9)
	assert.Zero(t, VATTotal(transactions, 13))
}

func TestIRSRetentionMatchesSubstringCaseInsensitively(t *testing.T) {
	transactions := []models.Transaction{
		{Type: models.TransactionExpense, Amount: 50, Category: "Retenção IRS"},
		{Type: models.TransactionExpense, Amount: 30, Description: "pagamento irs trimestral"},
		{Type: models.TransactionExpense, Amount: 999, Category: "Limpeza"},
	}

	assert.InDelta(t, 80.0, IRSRetentionTotal(transactions), 1e-9)
}

func TestPendingFractionCount(t *testing.T) {
	fractions := []models.Fraction{
		{Status: models.PaymentPaid},
		{Status: models.PaymentPending},
		{Status: models.PaymentOverdue},
		{Status: models.PaymentPaid},
	}

	assert.Equal(t, 2, PendingFractionCount(fractions))
}

func TestStatusBucketsKeepFixedOrderAndZeroBuckets(t *testing.T) {
	fractions := []models.Fraction{
		{Status: models.PaymentPaid},
		{Status: models.PaymentPaid},
		{Status: models.PaymentOverdue},
		{Status: models.PaymentOverdue},
		{Status: models.PaymentPending},
	}

	buckets := StatusBuckets(fractions)
	require.Len(t, buckets, 3)
	assert.Equal(t, StatusBucket{Status: models.PaymentPaid, Count: 2}, buckets[0])
	assert.Equal(t, StatusBucket{Status: models.PaymentPending, Count: 1}, buckets[1])
	assert.Equal(t, StatusBucket{Status: models.PaymentOverdue, Count: 2}, buckets[2])

	empty := StatusBuckets(nil)
	require.Len(t, empty, 3)
	for _, b := range empty {
		assert.Zero(t, b.Count)
	}
}

func TestMonthlySeriesAlwaysTwelveEntries(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionIncome, 100, "2024-01-10"),
		tx(models.TransactionIncome, 50, "2024-01-25"),
		tx(models.TransactionExpense, 20, "2024-03-02"),
		// Outside the requested year, ignored.
		tx(models.TransactionIncome, 999, "2023-12-31"),
		// Unparseable date, ignored.
		tx(models.TransactionIncome, 999, "not-a-date"),
		// RFC3339 timestamps are accepted too.
		tx(models.TransactionExpense, 5, "2024-03-15T10:30:00Z"),
	}

	series := MonthlySeries(transactions, 2024)
	require.Len(t, series, 12)

	assert.Equal(t, time.January, series[0].Month)
	assert.InDelta(t, 150.0, series[0].Income, 1e-9)
	assert.Zero(t, series[0].Expense)

	assert.Equal(t, time.March, series[2].Month)
	assert.InDelta(t, 25.0, series[2].Expense, 1e-9)

	assert.Equal(t, time.December, series[11].Month)
	assert.Zero(t, series[11].Income)
	assert.Zero(t, series[11].Expense)
}

func TestMonthlySeriesEmptyInput(t *testing.T) {
	series := MonthlySeries(nil, 2024)
	require.Len(t, series, 12)
	for i, entry := range series {
		assert.Equal(t, time.Month(i+1), entry.Month)
		assert.Zero(t, entry.Income)
		assert.Zero(t, entry.Expense)
	}
}

func TestValidVATRate(t *testing.T) {
	for _, rate := range models.VATRates {
		assert.True(t, models.ValidVATRate(rate))
	}
	assert.False(t, models.ValidVATRate(21))
	assert.False(t, models.ValidVATRate(-1))
}
