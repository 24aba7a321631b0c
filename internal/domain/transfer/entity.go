package transfer

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Transfer is a department move request. CurrentDepartment is snapshotted at
// creation time; approval overwrites the user's department with
// RequestedDepartment in the same transaction as the status write.
type Transfer struct {
	ID                  string
	UserID              string
	CurrentDepartment   string
	RequestedDepartment string
	Reason              string
	Status              Status
	ApprovedBy          *string
	ApproverRemarks     *string
	EffectiveDate       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields for list views
	UserName     *string
	UserEmail    *string
	ApproverName *string
}
