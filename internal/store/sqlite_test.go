package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/1cbyc/mt5-risk-calculator/internal/errors"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleScenario(name string) *Scenario {
	return &Scenario{
		Name: name,
		Params: simulation.Parameters{
			StartingBalance: 200,
			TargetBalance:   2000,
			RiskPercent:     2,
			RewardRatio:     3,
		},
		Notes:     "sample",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	saved := sampleScenario("recovery")
	require.NoError(t, store.SaveScenario(ctx, saved, false))

	got, err := store.GetScenario(ctx, "recovery")
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)
	assert.Equal(t, saved.Params, got.Params)
	assert.Equal(t, saved.Notes, got.Notes)
}

func TestSQLiteStore_DuplicateRejected(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScenario(ctx, sampleScenario("recovery"), false))

	err := store.SaveScenario(ctx, sampleScenario("recovery"), false)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrScenarioExists))
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScenario(ctx, sampleScenario("recovery"), false))

	updated := sampleScenario("recovery")
	updated.Params.TargetBalance = 5000
	require.NoError(t, store.SaveScenario(ctx, updated, true))

	got, err := store.GetScenario(ctx, "recovery")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got.Params.TargetBalance)
}

func TestSQLiteStore_List(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScenario(ctx, sampleScenario("one"), false))
	require.NoError(t, store.SaveScenario(ctx, sampleScenario("two"), false))

	scenarios, err := store.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Len(t, scenarios, 2)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScenario(ctx, sampleScenario("recovery"), false))
	require.NoError(t, store.DeleteScenario(ctx, "recovery"))

	_, err := store.GetScenario(ctx, "recovery")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrScenarioNotFound))
}

func TestSQLiteStore_DeleteMissing(t *testing.T) {
	store := testStore(t)

	err := store.DeleteScenario(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrScenarioNotFound))
}
