package maintenance

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Repository is the slice of the persistence gateway the service needs.
type Repository interface {
	ListInspections(ctx context.Context) ([]models.Inspection, error)
	CreateInspection(ctx context.Context, ins models.Inspection) (models.Inspection, error)
	UpdateInspectionStatus(ctx context.Context, id string, status models.InspectionStatus) (models.Inspection, error)
	DeleteInspection(ctx context.Context, id string) error
}

// Service manages the inspection register.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new maintenance service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// ComputeDateStatus derives an inspection's state from its next due date:
// EXPIRED when already past, WARNING when due within 30 days, OK otherwise.
// The day difference is rounded up, so a due date later today counts as day 0.
func ComputeDateStatus(nextDate, today time.Time) models.InspectionStatus {
	diffDays := int(math.Ceil(nextDate.Sub(today).Hours() / 24))
	switch {
	case diffDays < 0:
		return models.InspectionExpired
	case diffDays < 30:
		return models.InspectionWarning
	default:
		return models.InspectionOK
	}
}

// List returns all inspections ordered by next due date.
func (s *Service) List(ctx context.Context) ([]models.Inspection, error) {
	return s.repo.ListInspections(ctx)
}

// Create derives the initial status from the next due date and persists the
// inspection. The status is computed only here: it is not re-evaluated as
// time passes, so it goes stale until an explicit update or deletion.
func (s *Service) Create(ctx context.Context, ins models.Inspection) (models.Inspection, error) {
	next, err := time.Parse(dateLayout, ins.NextDate)
	if err != nil {
		return models.Inspection{}, fmt.Errorf("parse next date %q: %w", ins.NextDate, err)
	}

	ins.Status = ComputeDateStatus(next, s.now())

	created, err := s.repo.CreateInspection(ctx, ins)
	if err != nil {
		return models.Inspection{}, err
	}

	s.logger.Info("inspection created",
		zap.String("type", created.Type),
		zap.String("status", string(created.Status)))
	return created, nil
}

// UpdateStatus applies an explicit operator status override.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.InspectionStatus) (models.Inspection, error) {
	return s.repo.UpdateInspectionStatus(ctx, id, status)
}

// Delete removes an inspection from the register.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteInspection(ctx, id)
}
