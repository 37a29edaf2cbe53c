package policy

import (
	"fmt"

	"menuboard/internal/models/db_models"
	"menuboard/pkg/utils"
)

const (
	FreeMaxUsers      = 3
	FreeMaxUnitAdmins = 1
)

type DenyReason string

const (
	ReasonUserLimit      DenyReason = "free plan allows at most 3 users per unit"
	ReasonUnitAdminLimit DenyReason = "free plan allows a single unit-admin per unit"
)

// Headcount is what a unit currently holds.
type Headcount struct {
	Users      int64
	UnitAdmins int64
}

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Err converts a denial into an error wrapping utils.ErrPlanLimitReached.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", utils.ErrPlanLimitReached, d.Reason)
}

// CanCreateUser applies the plan ceilings to a new account request.
func CanCreateUser(plan db_models.Plan, current Headcount, requested db_models.Role) Decision {
	if plan == db_models.PlanPremium {
		return Decision{Allowed: true}
	}
	if current.Users >= FreeMaxUsers {
		return Decision{Reason: ReasonUserLimit}
	}
	if requested == db_models.RoleUnitAdmin && current.UnitAdmins >= FreeMaxUnitAdmins {
		return Decision{Reason: ReasonUnitAdminLimit}
	}
	return Decision{Allowed: true}
}
