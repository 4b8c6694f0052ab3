package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

func newTestStore(t *testing.T) *StaffStore {
	t.Helper()
	store, err := NewStaffStore(filepath.Join(t.TempDir(), "staff.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStaffCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Staff{
		Name:        "Carlos Mendes",
		Role:        "Porteiro",
		Contact:     "912345678",
		ContractEnd: "2025-12-31",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])

	updated, err := store.Update(ctx, created.ID, models.Staff{
		Name: "Carlos Mendes",
		Role: "Encarregado",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Encarregado", updated.Role)

	require.NoError(t, store.Delete(ctx, created.ID))

	listed, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestStaffListOrdersByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, models.Staff{Name: "Zélia", Role: "Limpeza"})
	require.NoError(t, err)
	_, err = store.Create(ctx, models.Staff{Name: "André", Role: "Jardineiro"})
	require.NoError(t, err)

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "André", listed[0].Name)
	assert.Equal(t, "Zélia", listed[1].Name)
}

func TestStaffUpdateUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update(context.Background(), "missing", models.Staff{Name: "X", Role: "Y"})
	require.Error(t, err)
}

func TestStaffStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.db")

	store, err := NewStaffStore(path)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), models.Staff{Name: "Carlos", Role: "Porteiro"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStaffStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	listed, err := reopened.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
