package policy

import (
	"fmt"

	"github.com/google/uuid"

	"menuboard/internal/models/db_models"
	"menuboard/pkg/utils"
)

// Actor is the authenticated caller: its role and the unit it is scoped to.
type Actor struct {
	AccountID uuid.UUID
	Role      db_models.Role
	UnitID    uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == db_models.RoleAdmin
}

var unitAdminActions = map[Action]bool{
	ActionView:             true,
	ActionEditMenu:         true,
	ActionPostAnnouncement: true,
	ActionManageUsers:      true,
}

// Authorize decides whether actor may perform action on the unit identified
// by target. Admins are global; unit-admins manage their own unit only;
// users may only view their own unit.
func Authorize(actor Actor, action Action, target uuid.UUID) error {
	switch actor.Role {
	case db_models.RoleAdmin:
		return nil
	case db_models.RoleUnitAdmin:
		if unitAdminActions[action] && sameUnit(actor, target) {
			return nil
		}
	case db_models.RoleUser:
		if action == ActionView && sameUnit(actor, target) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not %s", utils.ErrForbidden, actor.Role, action)
}

// CanAssignRole reports whether actor may create or delete accounts holding role.
func CanAssignRole(actor Actor, role db_models.Role) error {
	if actor.IsAdmin() || role != db_models.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: only admins manage admin accounts", utils.ErrForbidden)
}

func sameUnit(actor Actor, target uuid.UUID) bool {
	return actor.UnitID != uuid.Nil && actor.UnitID == target
}
