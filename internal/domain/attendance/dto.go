package attendance

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	Status  string  `json:"status"`
	Date    *string `json:"date,omitempty"` // defaults to today
	Remarks *string `json:"remarks,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, Late, WFH",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if r.Remarks != nil && !validator.WithinLength(*r.Remarks, 0, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks cannot exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows attendance queries. Department is a post-filter over
// the joined user since attendance rows do not store a department.
type ListFilter struct {
	From       *time.Time
	To         *time.Time
	UserID     *string
	Department *string
	Limit      int
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	Remarks        *string `json:"remarks,omitempty"`
	Timestamp      string  `json:"timestamp"`
	UserName       *string `json:"user_name,omitempty"`
	UserDepartment *string `json:"user_department,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		Date:           a.Date.Format("2006-01-02"),
		Status:         string(a.Status),
		Remarks:        a.Remarks,
		Timestamp:      a.Timestamp.Format(time.RFC3339),
		UserName:       a.UserName,
		UserDepartment: a.UserDepartment,
	}
}

func ToResponseList(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}
