package transfer

import "errors"

var (
	ErrTransferNotFound   = errors.New("transfer request not found")
	ErrPendingExists      = errors.New("a pending transfer request already exists")
	ErrSameDepartment     = errors.New("requested department equals current department")
	ErrAlreadyProcessed   = errors.New("transfer request already processed")
	ErrDecisionNotAllowed = errors.New("not allowed to decide this transfer request")
	ErrUnauthorizedAccess = errors.New("not authorized to access this transfer request")
)
