package grievance

import "errors"

var (
	ErrGrievanceNotFound  = errors.New("grievance not found")
	ErrGrievanceClosed    = errors.New("grievance is already closed")
	ErrDecisionNotAllowed = errors.New("not allowed to respond to this grievance")
	ErrAttachmentUpload   = errors.New("attachment upload failed")
	ErrUnauthorizedAccess = errors.New("not authorized to access this grievance")
)
