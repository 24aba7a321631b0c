package attendance

import "errors"

var (
	ErrAlreadyMarked      = errors.New("attendance already marked for this date")
	ErrUnauthorizedAccess = errors.New("not authorized to view attendance records")
)
