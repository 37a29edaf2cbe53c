package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"menuboard/internal/models/db_models"
	"menuboard/internal/testutil"
)

func TestMenuRepository_UpsertKeepsOneRowPerNaturalKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	units := NewUnitRepository(db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	unit, err := units.InsertIfAbsent(ctx, "North", db_models.PlanFree)
	require.NoError(t, err)

	photo := "https://cdn/images/North/a.png"
	first := &db_models.MenuEntry{
		UnitID: unit.ID, WeekKey: "2024-03-11", Day: db_models.Monday, Category: db_models.Lunch,
		SideDish: "rice", Protein: "chicken", Dessert: "fruit", ImageRef: &photo,
		UpdatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, first, true))

	second := &db_models.MenuEntry{
		UnitID: unit.ID, WeekKey: "2024-03-11", Day: db_models.Monday, Category: db_models.Lunch,
		SideDish: "beans", Protein: "fish", Dessert: "pudding",
		UpdatedAt: time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, second, false))

	var count int64
	require.NoError(t, db.Model(&db_models.MenuEntry{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	got, err := findSlot(ctx, repo, unit.ID, "2024-03-11", db_models.Monday, db_models.Lunch)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "beans", got.SideDish)
	require.Equal(t, "fish", got.Protein)
	require.Equal(t, "pudding", got.Dessert)
	require.NotNil(t, got.ImageRef)
	require.Equal(t, photo, *got.ImageRef)
	require.True(t, got.UpdatedAt.Equal(second.UpdatedAt))
}

func TestMenuRepository_UpsertOverwritesImageWhenAsked(t *testing.T) {
	db := testutil.NewTestDB(t)
	units := NewUnitRepository(db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	unit, err := units.InsertIfAbsent(ctx, "North", db_models.PlanFree)
	require.NoError(t, err)

	oldRef, newRef := "old.png", "new.png"
	require.NoError(t, repo.Upsert(ctx, &db_models.MenuEntry{
		UnitID: unit.ID, WeekKey: "2024-03-11", Day: db_models.Friday, Category: db_models.Dinner,
		SideDish: "soup", ImageRef: &oldRef,
	}, true))
	require.NoError(t, repo.Upsert(ctx, &db_models.MenuEntry{
		UnitID: unit.ID, WeekKey: "2024-03-11", Day: db_models.Friday, Category: db_models.Dinner,
		SideDish: "soup", ImageRef: &newRef,
	}, true))

	got, err := findSlot(ctx, repo, unit.ID, "2024-03-11", db_models.Friday, db_models.Dinner)
	require.NoError(t, err)
	require.Equal(t, newRef, *got.ImageRef)
}

func TestMenuRepository_FindByUnitAndWeekIsScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	units := NewUnitRepository(db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	north, err := units.InsertIfAbsent(ctx, "North", db_models.PlanFree)
	require.NoError(t, err)
	south, err := units.InsertIfAbsent(ctx, "South", db_models.PlanFree)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, &db_models.MenuEntry{UnitID: north.ID, WeekKey: "2024-03-11", Day: db_models.Monday, Category: db_models.Lunch, SideDish: "a"}, false))
	require.NoError(t, repo.Upsert(ctx, &db_models.MenuEntry{UnitID: north.ID, WeekKey: "2024-03-18", Day: db_models.Monday, Category: db_models.Lunch, SideDish: "b"}, false))
	require.NoError(t, repo.Upsert(ctx, &db_models.MenuEntry{UnitID: south.ID, WeekKey: "2024-03-11", Day: db_models.Monday, Category: db_models.Lunch, SideDish: "c"}, false))

	entries, err := repo.FindByUnitAndWeek(ctx, north.ID, "2024-03-11")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].SideDish)
}

func findSlot(ctx context.Context, repo MenuRepository, unitID uuid.UUID, weekKey string, day db_models.Day, category db_models.Category) (*db_models.MenuEntry, error) {
	entries, err := repo.FindByUnitAndWeek(ctx, unitID, weekKey)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Day == day && entries[i].Category == category {
			return &entries[i], nil
		}
	}
	return nil, nil
}
