package utils

import "errors"

var (
	ErrDatabaseError         = errors.New("database error")
	ErrStorageError          = errors.New("storage error")
	ErrInvalidWeek           = errors.New("invalid week date")
	ErrInvalidDay            = errors.New("invalid day of week")
	ErrInvalidCategory       = errors.New("invalid meal category")
	ErrInvalidPlan           = errors.New("invalid plan")
	ErrInvalidRole           = errors.New("invalid role")
	ErrMissingField          = errors.New("required field missing")
	ErrUnitNotFound          = errors.New("unit not found")
	ErrAnnouncementNotFound  = errors.New("announcement not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrForbidden             = errors.New("forbidden")
	ErrPlanLimitReached      = errors.New("plan limit reached")
	ErrDraftNotFound         = errors.New("draft not found")
	ErrImageTooLarge         = errors.New("image too large")
)
