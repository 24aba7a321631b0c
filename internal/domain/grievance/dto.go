package grievance

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type CreateGrievanceRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (r *CreateGrievanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "invalid category",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	} else if !validator.WithinLength(r.Description, 20, 5000) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must be between 20 and 5000 characters",
		})
	}

	// Priority defaults to medium when omitted
	if !validator.IsEmpty(r.Priority) && !IsValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "invalid priority",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RespondGrievanceRequest struct {
	Status   string  `json:"status"`
	Response *string `json:"response,omitempty"`
}

func (r *RespondGrievanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else {
		switch Status(r.Status) {
		case StatusInProgress, StatusResolved, StatusClosed:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be in_progress, resolved or closed",
			})
		}
	}

	if r.Response != nil && !validator.WithinLength(*r.Response, 0, 2000) {
		errs = append(errs, validator.ValidationError{
			Field:   "response",
			Message: "response cannot exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Attachment is the optional uploaded file handed to Create.
type Attachment struct {
	Content      []byte
	OriginalName string
	MimeType     string
	Size         int64
}

type ListFilter struct {
	Status   *Status
	Category *Category
	Priority *Priority
	Limit    int
}

type GrievanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	Response       *string `json:"response,omitempty"`
	RespondedBy    *string `json:"responded_by,omitempty"`
	RespondedAt    *string `json:"responded_at,omitempty"`
	FileURL        *string `json:"file_url,omitempty"`
	UserName       *string `json:"user_name,omitempty"`
	UserDepartment *string `json:"user_department,omitempty"`
	ResponderName  *string `json:"responder_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(g Grievance) GrievanceResponse {
	resp := GrievanceResponse{
		ID:             g.ID,
		UserID:         g.UserID,
		Category:       string(g.Category),
		Description:    g.Description,
		Status:         string(g.Status),
		Priority:       string(g.Priority),
		Response:       g.Response,
		RespondedBy:    g.RespondedBy,
		FileURL:        g.FileURL,
		UserName:       g.UserName,
		UserDepartment: g.UserDepartment,
		ResponderName:  g.ResponderName,
		CreatedAt:      g.CreatedAt.Format(time.RFC3339),
	}
	if g.RespondedAt != nil {
		at := g.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &at
	}
	return resp
}

func ToResponseList(grievances []Grievance) []GrievanceResponse {
	out := make([]GrievanceResponse, 0, len(grievances))
	for _, g := range grievances {
		out = append(out, ToResponse(g))
	}
	return out
}
