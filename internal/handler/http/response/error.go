package response

import (
	"errors"
	"net/http"

	"github.com/staffhive/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhive/hrms-backend-go/internal/domain/auth"
	"github.com/staffhive/hrms-backend-go/internal/domain/file"
	"github.com/staffhive/hrms-backend-go/internal/domain/grievance"
	"github.com/staffhive/hrms-backend-go/internal/domain/leave"
	"github.com/staffhive/hrms-backend-go/internal/domain/task"
	"github.com/staffhive/hrms-backend-go/internal/domain/transfer"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already in use")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave request exists for this period")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrDecisionNotAllowed):
		Forbidden(w, "Not allowed to decide this leave request")
	case errors.Is(err, leave.ErrUnauthorizedAccess):
		Forbidden(w, "Not authorized to access this leave request")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "from_date must not be after to_date", nil)

	// Transfer domain errors
	case errors.Is(err, transfer.ErrTransferNotFound):
		NotFound(w, "Transfer request not found")
	case errors.Is(err, transfer.ErrPendingExists):
		Conflict(w, "A pending transfer request already exists")
	case errors.Is(err, transfer.ErrSameDepartment):
		BadRequest(w, "Requested department equals current department", nil)
	case errors.Is(err, transfer.ErrAlreadyProcessed):
		Conflict(w, "Transfer request already processed")
	case errors.Is(err, transfer.ErrDecisionNotAllowed):
		Forbidden(w, "Not allowed to decide this transfer request")
	case errors.Is(err, transfer.ErrUnauthorizedAccess):
		Forbidden(w, "Not authorized to access this transfer request")

	// Grievance domain errors
	case errors.Is(err, grievance.ErrGrievanceNotFound):
		NotFound(w, "Grievance not found")
	case errors.Is(err, grievance.ErrGrievanceClosed):
		Conflict(w, "Grievance is already closed")
	case errors.Is(err, grievance.ErrDecisionNotAllowed):
		Forbidden(w, "Not allowed to respond to this grievance")
	case errors.Is(err, grievance.ErrUnauthorizedAccess):
		Forbidden(w, "Not authorized to access this grievance")
	case errors.Is(err, grievance.ErrAttachmentUpload):
		BadGateway(w, "Attachment upload failed")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrUnauthorizedAccess):
		Forbidden(w, "Not authorized to view attendance records")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotOwner):
		Forbidden(w, "Not authorized to access this task")

	// File domain errors
	case errors.Is(err, file.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, file.ErrFileAccessDenied):
		Forbidden(w, "Not authorized to access this file")
	case errors.Is(err, file.ErrUnsupportedType):
		BadRequest(w, "Unsupported file type", nil)
	case errors.Is(err, file.ErrStorageUnavailable):
		BadGateway(w, "File storage unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
