package transfer

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type RequestTransferRequest struct {
	RequestedDepartment string `json:"requested_department"`
	Reason              string `json:"reason"`
}

func (r *RequestTransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestedDepartment) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_department",
			Message: "requested_department is required",
		})
	} else if !validator.WithinLength(r.RequestedDepartment, 1, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_department",
			Message: "requested_department cannot exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if !validator.WithinLength(r.Reason, 10, 2000) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be between 10 and 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideTransferRequest struct {
	Status          string  `json:"status"`
	ApproverRemarks *string `json:"approver_remarks,omitempty"`
	EffectiveDate   *string `json:"effective_date,omitempty"`
}

func (r *DecideTransferRequest) Validate() error {
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

	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_date",
				Message: "effective_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransferResponse struct {
	ID                  string  `json:"id"`
	UserID              string  `json:"user_id"`
	CurrentDepartment   string  `json:"current_department"`
	RequestedDepartment string  `json:"requested_department"`
	Reason              string  `json:"reason"`
	Status              string  `json:"status"`
	ApprovedBy          *string `json:"approved_by,omitempty"`
	ApproverRemarks     *string `json:"approver_remarks,omitempty"`
	EffectiveDate       *string `json:"effective_date,omitempty"`
	UserName            *string `json:"user_name,omitempty"`
	ApproverName        *string `json:"approver_name,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

func ToResponse(tr Transfer) TransferResponse {
	resp := TransferResponse{
		ID:                  tr.ID,
		UserID:              tr.UserID,
		CurrentDepartment:   tr.CurrentDepartment,
		RequestedDepartment: tr.RequestedDepartment,
		Reason:              tr.Reason,
		Status:              string(tr.Status),
		ApprovedBy:          tr.ApprovedBy,
		ApproverRemarks:     tr.ApproverRemarks,
		UserName:            tr.UserName,
		ApproverName:        tr.ApproverName,
		CreatedAt:           tr.CreatedAt.Format(time.RFC3339),
	}
	if tr.EffectiveDate != nil {
		d := tr.EffectiveDate.Format("2006-01-02")
		resp.EffectiveDate = &d
	}
	return resp
}

func ToResponseList(transfers []Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, tr := range transfers {
		out = append(out, ToResponse(tr))
	}
	return out
}
