package models

import "time"

// Task is a todo item owned by exactly one user. UserID is set once at
// creation from the authenticated identity and never changes afterwards.
// ScheduledDate carries day precision; the time component is ignored.
type Task struct {
	ID            string
	UserID        string
	Title         string
	Description   *string
	ScheduledDate *time.Time
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
