package db_models

// All lists every table owned by the service, in migration order.
func All() []interface{} {
	return []interface{}{
		&Unit{},
		&MenuEntry{},
		&Announcement{},
		&UserAccount{},
	}
}
