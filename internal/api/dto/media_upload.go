package dto

// MediaTempMetadata 临时媒体元信息，落库前暂存 Redis
type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt int64  `json:"created_at"`
}

// MediaUploadDTO 上传结果
type MediaUploadDTO struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url"`
}
