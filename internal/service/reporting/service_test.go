package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

type fakeRepo struct {
	transactions []models.Transaction
	fractions    []models.Fraction
	saved        []models.DailySnapshot
	saveErr      error
}

func (f *fakeRepo) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeRepo) ListFractions(context.Context) ([]models.Fraction, error) {
	return f.fractions, nil
}

func (f *fakeRepo) SaveDailySnapshot(_ context.Context, s models.DailySnapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

type fakeExporter struct {
	rows      map[string][][]interface{}
	appendErr error
}

func (f *fakeExporter) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if f.rows == nil {
		f.rows = map[string][][]interface{}{}
	}
	f.rows[sheetRange] = append(f.rows[sheetRange], values)
	return nil
}

func TestBuildDailySnapshotAggregatesLedger(t *testing.T) {
	repo := &fakeRepo{
		transactions: []models.Transaction{
			{Type: models.TransactionIncome, Amount: 1000, Date: "2024-06-01"},
			{Type: models.TransactionExpense, Amount: 400, Date: "2024-06-02"},
		},
		fractions: []models.Fraction{
			{Status: models.PaymentPaid},
			{Status: models.PaymentOverdue},
		},
	}
	exporter := &fakeExporter{}
	svc := NewService(repo, exporter, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC) }

	snapshot, err := svc.BuildDailySnapshot(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 600.0, snapshot.Balance, 1e-9)
	assert.InDelta(t, 1000.0, snapshot.TotalIncome, 1e-9)
	assert.InDelta(t, 400.0, snapshot.TotalExpense, 1e-9)
	assert.InDelta(t, 100.0, snapshot.LegalReserve, 1e-9)
	assert.Equal(t, 1, snapshot.PendingFractions)

	require.Len(t, repo.saved, 1)
	require.Len(t, exporter.rows[snapshotSheetRange], 1)
}

func TestBuildDailySnapshotExportFailureIsNotFatal(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeExporter{appendErr: errors.New("sheets down")}, nil)

	_, err := svc.BuildDailySnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)
}

func TestBuildDailySnapshotWithoutExporter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)

	_, err := svc.BuildDailySnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)
}

func TestBuildDailySnapshotSaveFailure(t *testing.T) {
	svc := NewService(&fakeRepo{saveErr: errors.New("gateway down")}, nil, nil)

	_, err := svc.BuildDailySnapshot(context.Background())
	require.Error(t, err)
}

func TestExportMonthlySeriesWritesTwelveRows(t *testing.T) {
	repo := &fakeRepo{transactions: []models.Transaction{
		{Type: models.TransactionIncome, Amount: 100, Date: "2024-01-10"},
	}}
	exporter := &fakeExporter{}
	svc := NewService(repo, exporter, nil)

	require.NoError(t, svc.ExportMonthlySeries(context.Background(), 2024))
	assert.Len(t, exporter.rows[seriesSheetRange], 12)
}

func TestExportMonthlySeriesRequiresExporter(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nil)
	require.Error(t, svc.ExportMonthlySeries(context.Background(), 2024))
}
