package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/repository/sheets"
	"github.com/seogestao/condogest/internal/service/finance"
)

const (
	snapshotSheetRange = "Snapshots!A:G"
	seriesSheetRange   = "Monthly!A:D"
	dateLayout         = "2006-01-02"
)

// Repository is the slice of the persistence gateway the reporting job reads
// from and writes snapshots to.
type Repository interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListFractions(ctx context.Context) ([]models.Fraction, error)
	SaveDailySnapshot(ctx context.Context, s models.DailySnapshot) error
}

// Service produces the nightly financial snapshot and spreadsheet exports.
type Service struct {
	repo     Repository
	exporter sheets.Exporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a reporting service. The exporter may be nil, in which
// case spreadsheet export is skipped.
func NewService(repo Repository, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, exporter: exporter, logger: logger, now: time.Now}
}

// BuildDailySnapshot aggregates the current ledger into a snapshot, persists
// it and appends a row to the accounting spreadsheet when configured.
func (s *Service) BuildDailySnapshot(ctx context.Context) (models.DailySnapshot, error) {
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return models.DailySnapshot{}, fmt.Errorf("load transactions: %w", err)
	}
	fractions, err := s.repo.ListFractions(ctx)
	if err != nil {
		return models.DailySnapshot{}, fmt.Errorf("load fractions: %w", err)
	}

	now := s.now().UTC()
	income := finance.TotalIncome(transactions)
	snapshot := models.DailySnapshot{
		Date:             now.Truncate(24 * time.Hour),
		Balance:          finance.TotalBalance(transactions),
		TotalIncome:      income,
		TotalExpense:     finance.TotalExpense(transactions),
		LegalReserve:     finance.LegalReserve(income),
		PendingFractions: finance.PendingFractionCount(fractions),
		CreatedAt:        now,
	}

	if err := s.repo.SaveDailySnapshot(ctx, snapshot); err != nil {
		return models.DailySnapshot{}, fmt.Errorf("save snapshot: %w", err)
	}

	if s.exporter != nil {
		row := []interface{}{
			snapshot.Date.Format(dateLayout),
			snapshot.Balance,
			snapshot.TotalIncome,
			snapshot.TotalExpense,
			snapshot.LegalReserve,
			snapshot.PendingFractions,
			snapshot.CreatedAt.Format(time.RFC3339),
		}
		if err := s.exporter.AppendRow(ctx, snapshotSheetRange, row); err != nil {
			// Export is best-effort; the stored snapshot stands.
			s.logger.Warn("snapshot export failed", zap.Error(err))
		}
	}

	s.logger.Info("daily snapshot built",
		zap.Float64("balance", snapshot.Balance),
		zap.Int("pending_fractions", snapshot.PendingFractions))
	return snapshot, nil
}

// ExportMonthlySeries appends the year's 12 income/expense rows to the
// accounting spreadsheet.
func (s *Service) ExportMonthlySeries(ctx context.Context, year int) error {
	if s.exporter == nil {
		return fmt.Errorf("sheet exporter not configured")
	}

	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	for _, entry := range finance.MonthlySeries(transactions, year) {
		row := []interface{}{year, int(entry.Month), entry.Income, entry.Expense}
		if err := s.exporter.AppendRow(ctx, seriesSheetRange, row); err != nil {
			return fmt.Errorf("export month %d: %w", entry.Month, err)
		}
	}

	s.logger.Info("monthly series exported", zap.Int("year", year))
	return nil
}
