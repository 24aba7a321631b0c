package file

import "errors"

var (
	ErrFileNotFound       = errors.New("file not found")
	ErrFileAccessDenied   = errors.New("not authorized to access this file")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrStorageUnavailable = errors.New("file storage unavailable")
)
