package dto

// MediaUploadResultDTO 封面上传结果
type MediaUploadResultDTO struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
