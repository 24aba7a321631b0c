package file

import "time"

type RelatedEntityType string

const (
	RelatedGrievance RelatedEntityType = "grievance"
	RelatedLeave     RelatedEntityType = "leave"
	RelatedTransfer  RelatedEntityType = "transfer"
	RelatedOther     RelatedEntityType = "other"
)

// AllowedMimeTypes whitelists what can be attached to a grievance.
var AllowedMimeTypes = []string{"application/pdf", "image/jpeg", "image/png"}

func IsAllowedMimeType(mime string) bool {
	for _, m := range AllowedMimeTypes {
		if m == mime {
			return true
		}
	}
	return false
}

// FileMeta records an uploaded blob and the workflow resource it belongs to.
type FileMeta struct {
	ID                string
	FileName          string
	OriginalName      string
	MimeType          string
	Size              int64
	BlobURL           string
	BlobName          string
	UploadedBy        string
	RelatedEntityType RelatedEntityType
	RelatedEntityID   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
