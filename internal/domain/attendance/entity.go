package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusWFH     Status = "WFH"
)

var ValidStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusWFH}

func IsValidStatus(s string) bool {
	for _, st := range ValidStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Attendance is an append-only daily record: exactly one row per user per
// calendar day, never overwritten.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time // day granularity, UTC midnight
	Status    Status
	Remarks   *string
	Timestamp time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for list views
	UserName       *string
	UserEmail      *string
	UserDepartment *string
}

// NormalizeDate strips the time-of-day component, anchoring to UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
