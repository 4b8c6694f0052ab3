package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

type fakeRepo struct {
	created models.Inspection
}

func (f *fakeRepo) ListInspections(context.Context) ([]models.Inspection, error) { return nil, nil }

func (f *fakeRepo) CreateInspection(_ context.Context, ins models.Inspection) (models.Inspection, error) {
	ins.ID = "ins-1"
	f.created = ins
	return ins, nil
}

func (f *fakeRepo) UpdateInspectionStatus(_ context.Context, id string, status models.InspectionStatus) (models.Inspection, error) {
	return models.Inspection{ID: id, Status: status}, nil
}

func (f *fakeRepo) DeleteInspection(context.Context, string) error { return nil }

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeDateStatus(t *testing.T) {
	today := date("2024-06-01")

	cases := []struct {
		nextDate string
		want     models.InspectionStatus
	}{
		{"2024-05-01", models.InspectionExpired},
		{"2024-06-01", models.InspectionWarning}, // due today counts as day 0
		{"2024-06-15", models.InspectionWarning},
		{"2024-06-30", models.InspectionWarning}, // day 29, still inside the window
		{"2024-07-01", models.InspectionOK},      // day 30, outside
		{"2024-07-15", models.InspectionOK},
	}

	for _, tc := range cases {
		t.Run(tc.nextDate, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeDateStatus(date(tc.nextDate), today))
		})
	}
}

func TestCreateDerivesStatusFromNextDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return date("2024-06-01") }

	created, err := svc.Create(context.Background(), models.Inspection{
		Type:     "Elevador",
		NextDate: "2024-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InspectionWarning, created.Status)
	assert.Equal(t, models.InspectionWarning, repo.created.Status)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), models.Inspection{NextDate: "15/06/2024"})
	require.Error(t, err)
}
