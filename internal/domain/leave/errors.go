package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrOverlappingLeave   = errors.New("overlapping leave request exists for this period")
	ErrAlreadyProcessed   = errors.New("leave request already processed")
	ErrDecisionNotAllowed = errors.New("not allowed to decide this leave request")
	ErrUnauthorizedAccess = errors.New("not authorized to access this leave request")
	ErrInvalidDateRange   = errors.New("from_date must not be after to_date")
)
