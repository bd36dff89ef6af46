package dto

// UploadResponse is returned by both upload targets; URL is either a
// local static path or a public Google Drive link.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
