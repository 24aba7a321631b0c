package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeEarned    LeaveType = "earned"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)

var ValidLeaveTypes = []LeaveType{
	LeaveTypeSick, LeaveTypeCasual, LeaveTypeEarned,
	LeaveTypeMaternity, LeaveTypePaternity, LeaveTypeUnpaid,
}

func IsValidLeaveType(t string) bool {
	for _, lt := range ValidLeaveTypes {
		if string(lt) == t {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave is a request/response workflow resource: created pending by its
// owner, decided exactly once by a privileged actor, immutable afterwards.
type Leave struct {
	ID              string
	UserID          string
	LeaveType       LeaveType
	FromDate        time.Time
	ToDate          time.Time
	Reason          string
	Status          Status
	ApprovedBy      *string
	ApproverRemarks *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields for list views
	UserName       *string
	UserEmail      *string
	UserDepartment *string
	ApproverName   *string
}

// Overlaps reports whether [l.FromDate, l.ToDate] intersects [from, to].
// Two ranges [a,b] and [c,d] overlap iff a <= d and c <= b.
func (l *Leave) Overlaps(from, to time.Time) bool {
	return !l.FromDate.After(to) && !from.After(l.ToDate)
}
