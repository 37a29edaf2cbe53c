package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"menuboard/internal/models/db_models"
	"menuboard/pkg/utils"
)

func TestAuthorize(t *testing.T) {
	own, other := uuid.New(), uuid.New()
	admin := Actor{Role: db_models.RoleAdmin, UnitID: own}
	unitAdmin := Actor{Role: db_models.RoleUnitAdmin, UnitID: own}
	user := Actor{Role: db_models.RoleUser, UnitID: own}

	cases := []struct {
		name   string
		actor  Actor
		action Action
		target uuid.UUID
		allow  bool
	}{
		{"admin edits any unit", admin, ActionEditMenu, other, true},
		{"admin changes plan", admin, ActionChangePlan, other, true},
		{"admin manages units", admin, ActionManageUnits, uuid.Nil, true},
		{"unit-admin edits own menu", unitAdmin, ActionEditMenu, own, true},
		{"unit-admin posts own announcement", unitAdmin, ActionPostAnnouncement, own, true},
		{"unit-admin manages own users", unitAdmin, ActionManageUsers, own, true},
		{"unit-admin cannot touch other unit", unitAdmin, ActionEditMenu, other, false},
		{"unit-admin cannot change plan", unitAdmin, ActionChangePlan, own, false},
		{"unit-admin cannot create units", unitAdmin, ActionManageUnits, own, false},
		{"user views own unit", user, ActionView, own, true},
		{"user cannot view other unit", user, ActionView, other, false},
		{"user cannot edit", user, ActionEditMenu, own, false},
		{"unknown role denied", Actor{Role: "guest", UnitID: own}, ActionView, own, false},
		{"unscoped user denied", Actor{Role: db_models.RoleUser}, ActionView, uuid.Nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.action, tc.target)
			if tc.allow {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, utils.ErrForbidden)
			}
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	unitAdmin := Actor{Role: db_models.RoleUnitAdmin, UnitID: uuid.New()}

	require.NoError(t, CanAssignRole(unitAdmin, db_models.RoleUser))
	require.NoError(t, CanAssignRole(unitAdmin, db_models.RoleUnitAdmin))
	require.ErrorIs(t, CanAssignRole(unitAdmin, db_models.RoleAdmin), utils.ErrForbidden)
	require.NoError(t, CanAssignRole(Actor{Role: db_models.RoleAdmin}, db_models.RoleAdmin))
}
