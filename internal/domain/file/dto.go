package file

import "time"

type FileAccessResponse struct {
	URL       string           `json:"url"`
	ExpiresIn string           `json:"expires_in"`
	FileMeta  FileMetaResponse `json:"file_meta"`
}

type FileMetaResponse struct {
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
}

func ToMetaResponse(fm FileMeta) FileMetaResponse {
	return FileMetaResponse{
		FileName:   fm.OriginalName,
		MimeType:   fm.MimeType,
		Size:       fm.Size,
		UploadedAt: fm.CreatedAt.Format(time.RFC3339),
	}
}
