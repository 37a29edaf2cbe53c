// Package policy holds the pure authorization and plan-limit rules. Nothing
// here touches storage; callers load the facts and ask.
package policy

// Action is something an account wants to do to a unit.
type Action string

const (
	ActionView             Action = "view"
	ActionEditMenu         Action = "edit-menu"
	ActionPostAnnouncement Action = "post-announcement"
	ActionManageUsers      Action = "manage-users"
	ActionChangePlan       Action = "change-plan"
	ActionManageUnits      Action = "manage-units"
)
