package models

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Shift{},
		&User{},
		&Worker{},
		&Attendance{},
		&Warehouse{},
		&Region{},
		&Project{},
		&AuditLog{},
	}
}
