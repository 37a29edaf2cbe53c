package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"menuboard/internal/models/db_models"
	"menuboard/internal/testutil"
)

func TestAccountRepository_InsertCheckedHonoursCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	unit, err := NewUnitRepository(db).InsertIfAbsent(context.Background(), "North", db_models.PlanFree)
	require.NoError(t, err)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	var seen []UnitHeadcount
	allow := func(c UnitHeadcount) error { seen = append(seen, c); return nil }

	require.NoError(t, repo.InsertChecked(ctx, &db_models.UserAccount{Username: "ana", CredentialRef: "x", Role: db_models.RoleUnitAdmin, UnitID: unit.ID}, allow))
	require.NoError(t, repo.InsertChecked(ctx, &db_models.UserAccount{Username: "bia", CredentialRef: "x", Role: db_models.RoleUser, UnitID: unit.ID}, allow))

	require.Equal(t, []UnitHeadcount{{Users: 0, UnitAdmins: 0}, {Users: 1, UnitAdmins: 1}}, seen)

	denied := errors.New("denied")
	err = repo.InsertChecked(ctx, &db_models.UserAccount{Username: "caio", CredentialRef: "x", Role: db_models.RoleUser, UnitID: unit.ID},
		func(UnitHeadcount) error { return denied })
	require.ErrorIs(t, err, denied)

	var counts UnitHeadcount
	err = repo.InsertChecked(ctx, &db_models.UserAccount{Username: "caio", CredentialRef: "x", Role: db_models.RoleUser, UnitID: unit.ID},
		func(c UnitHeadcount) error { counts = c; return denied })
	require.ErrorIs(t, err, denied)
	require.Equal(t, UnitHeadcount{Users: 2, UnitAdmins: 1}, counts)

	found, err := repo.FindByUsername(ctx, "caio")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestAccountRepository_ListAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	unit, err := NewUnitRepository(db).InsertIfAbsent(context.Background(), "North", db_models.PlanFree)
	require.NoError(t, err)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	allow := func(UnitHeadcount) error { return nil }

	a := &db_models.UserAccount{Username: "zeca", CredentialRef: "x", Role: db_models.RoleUser, UnitID: unit.ID}
	b := &db_models.UserAccount{Username: "ana", CredentialRef: "x", Role: db_models.RoleUser, UnitID: unit.ID}
	require.NoError(t, repo.InsertChecked(ctx, a, allow))
	require.NoError(t, repo.InsertChecked(ctx, b, allow))

	list, err := repo.ListByUnit(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "ana", list[0].Username)

	require.NoError(t, repo.Delete(ctx, a.ID))
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
