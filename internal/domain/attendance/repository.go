package attendance

import "context"

type AttendanceRepository interface {
	// Create inserts a daily record. The (user_id, date) unique index is
	// the hard backstop; duplicate inserts return ErrAlreadyMarked.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
