package models

// StoredFile describes one staged upload on disk. The stored path is unique
// per upload and the file is removed again before the request completes.
type StoredFile struct {
	OriginalName string `json:"original_name"`
	StoredPath   string `json:"stored_path"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

// UploadResponse is the body of a successful POST /api/upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Analysis string `json:"analysis"`
	FileType string `json:"fileType"`
}
