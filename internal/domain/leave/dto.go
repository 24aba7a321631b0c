package leave

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !IsValidLeaveType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "invalid leave type",
		})
	}

	var from, to time.Time
	var fromOK, toOK bool
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
		})
	} else if from, fromOK = validator.IsValidDate(r.FromDate); !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date is required",
		})
	} else if to, toOK = validator.IsValidDate(r.ToDate); !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be YYYY-MM-DD",
		})
	}

	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if !validator.WithinLength(r.Reason, 5, 1000) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be between 5 and 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	Status          string  `json:"status"`
	ApproverRemarks *string `json:"approver_remarks,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if r.ApproverRemarks != nil && !validator.WithinLength(*r.ApproverRemarks, 0, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_remarks",
			Message: "approver_remarks cannot exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows leave queries. Department is applied as a post-filter
// over the joined user, not in the query itself.
type ListFilter struct {
	Status     *Status
	Department *string
	Limit      int
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveType       string  `json:"leave_type"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApproverRemarks *string `json:"approver_remarks,omitempty"`
	UserName        *string `json:"user_name,omitempty"`
	UserDepartment  *string `json:"user_department,omitempty"`
	ApproverName    *string `json:"approver_name,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		LeaveType:       string(l.LeaveType),
		FromDate:        l.FromDate.Format("2006-01-02"),
		ToDate:          l.ToDate.Format("2006-01-02"),
		Reason:          l.Reason,
		Status:          string(l.Status),
		ApprovedBy:      l.ApprovedBy,
		ApproverRemarks: l.ApproverRemarks,
		UserName:        l.UserName,
		UserDepartment:  l.UserDepartment,
		ApproverName:    l.ApproverName,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, ToResponse(l))
	}
	return out
}
