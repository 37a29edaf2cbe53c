package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"menuboard/internal/models/db_models"
	"menuboard/internal/testutil"
)

func TestUnitRepository_InsertIfAbsentIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUnitRepository(db)
	ctx := context.Background()

	first, err := repo.InsertIfAbsent(ctx, "North", db_models.PlanFree)
	require.NoError(t, err)
	second, err := repo.InsertIfAbsent(ctx, "North", db_models.PlanPremium)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, db_models.PlanFree, second.Plan)

	var count int64
	require.NoError(t, db.Model(&db_models.Unit{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUnitRepository_ListAllAlphabetical(t *testing.T) {
	repo := NewUnitRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"South", "Central", "North"} {
		_, err := repo.InsertIfAbsent(ctx, name, db_models.PlanFree)
		require.NoError(t, err)
	}

	units, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, units, 3)
	require.Equal(t, "Central", units[0].Name)
	require.Equal(t, "North", units[1].Name)
	require.Equal(t, "South", units[2].Name)
}

func TestUnitRepository_UpdatePlan(t *testing.T) {
	repo := NewUnitRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	unit, err := repo.InsertIfAbsent(ctx, "North", db_models.PlanFree)
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePlan(ctx, unit.ID, db_models.PlanPremium))
	got, err := repo.FindByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, db_models.PlanPremium, got.Plan)

	require.ErrorIs(t, repo.UpdatePlan(ctx, uuid.New(), db_models.PlanFree), gorm.ErrRecordNotFound)
}

func TestUnitRepository_FindByNameMissing(t *testing.T) {
	repo := NewUnitRepository(testutil.NewTestDB(t))

	unit, err := repo.FindByName(context.Background(), "nowhere")
	require.NoError(t, err)
	require.Nil(t, unit)
}
