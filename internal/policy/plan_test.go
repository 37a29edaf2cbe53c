package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"menuboard/internal/models/db_models"
	"menuboard/pkg/utils"
)

func TestCanCreateUser_FreePlanUserCeiling(t *testing.T) {
	full := Headcount{Users: 3, UnitAdmins: 0}

	for _, role := range []db_models.Role{db_models.RoleUser, db_models.RoleUnitAdmin, db_models.RoleAdmin} {
		d := CanCreateUser(db_models.PlanFree, full, role)
		require.False(t, d.Allowed, "role %s", role)
		require.Equal(t, ReasonUserLimit, d.Reason)
		require.ErrorIs(t, d.Err(), utils.ErrPlanLimitReached)
	}
}

func TestCanCreateUser_FreePlanSingleUnitAdmin(t *testing.T) {
	current := Headcount{Users: 1, UnitAdmins: 1}

	d := CanCreateUser(db_models.PlanFree, current, db_models.RoleUnitAdmin)
	require.False(t, d.Allowed)
	require.Equal(t, ReasonUnitAdminLimit, d.Reason)

	require.True(t, CanCreateUser(db_models.PlanFree, current, db_models.RoleUser).Allowed)
}

func TestCanCreateUser_PremiumIsUnrestricted(t *testing.T) {
	require.True(t, CanCreateUser(db_models.PlanPremium, Headcount{Users: 3}, db_models.RoleUser).Allowed)
	require.True(t, CanCreateUser(db_models.PlanPremium, Headcount{Users: 1, UnitAdmins: 1}, db_models.RoleUnitAdmin).Allowed)
	require.NoError(t, CanCreateUser(db_models.PlanPremium, Headcount{Users: 50}, db_models.RoleUser).Err())
}

func TestCanCreateUser_FreePlanWithRoom(t *testing.T) {
	d := CanCreateUser(db_models.PlanFree, Headcount{Users: 2}, db_models.RoleUnitAdmin)
	require.True(t, d.Allowed)
	require.NoError(t, d.Err())
}
