package db_models

import (
	"fmt"
	"strings"

	"menuboard/pkg/utils"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

func ParsePlan(s string) (Plan, error) {
	switch p := Plan(strings.ToLower(strings.TrimSpace(s))); p {
	case PlanFree, PlanPremium:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", utils.ErrInvalidPlan, s)
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleUnitAdmin Role = "unit-admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleAdmin, RoleUnitAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", utils.ErrInvalidRole, s)
}

type Day string

const (
	Monday    Day = "mon"
	Tuesday   Day = "tue"
	Wednesday Day = "wed"
	Thursday  Day = "thu"
	Friday    Day = "fri"
)

// WeekDays lists the menu days in display order.
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

func ParseDay(s string) (Day, error) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range WeekDays {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", utils.ErrInvalidDay, s)
}

type Category string

const (
	Lunch  Category = "lunch"
	Dinner Category = "dinner"
)

var MealCategories = []Category{Lunch, Dinner}

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Lunch, Dinner:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", utils.ErrInvalidCategory, s)
}
