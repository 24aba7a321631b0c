package task

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields for list views
	OwnerName  *string
	OwnerEmail *string
}
