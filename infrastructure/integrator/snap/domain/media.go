package snapdomain

import "time"

type MediaType string

const (
	MediaTypeVideo       MediaType = "VIDEO"
	MediaTypeImage       MediaType = "IMAGE"
	MediaTypeLensPackage MediaType = "LENS_PACKAGE"
)

type MediaStatus string

const (
	MediaStatusPendingUpload MediaStatus = "PENDING_UPLOAD"
	MediaStatusReady         MediaStatus = "READY"
)

type ImageMetadata struct {
	Height      int    `json:"height_px,omitempty"`
	Width       int    `json:"width_px,omitempty"`
	ImageFormat string `json:"image_format,omitempty"`
}

type VideoMetadata struct {
	Height             int     `json:"height_px,omitempty"`
	Width              int     `json:"width_px,omitempty"`
	RotationDegrees    int     `json:"rotation,omitempty"`
	IntegratedLoudness float64 `json:"integrated_loudness,omitempty"`
	TruePeak           float64 `json:"true_peak,omitempty"`
}

type Media struct {
	ID                string         `json:"id,omitempty"`
	AdAccountID       string         `json:"ad_account_id,omitempty"`
	Name              string         `json:"name,omitempty"`
	Type              MediaType      `json:"type,omitempty"`
	MediaStatus       MediaStatus    `json:"media_status,omitempty"`
	FileName          string         `json:"file_name,omitempty"`
	DownloadLink      string         `json:"download_link,omitempty"`
	DurationInSeconds float64        `json:"duration_in_seconds,omitempty"`
	FileSizeInBytes   int64          `json:"file_size_in_bytes,omitempty"`
	ImageMetadata     *ImageMetadata `json:"image_metadata,omitempty"`
	VideoMetadata     *VideoMetadata `json:"video_metadata,omitempty"`
	CreatedAt         *time.Time     `json:"created_at,omitempty"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty"`
}

// MediaFile é o resultado de um upload (simples ou em partes)
type MediaFile struct {
	ID           string `json:"id,omitempty"`
	FileName     string `json:"file_name,omitempty"`
	DownloadLink string `json:"download_link,omitempty"`
}

type MediaUploadResponse struct {
	RequestStatus string     `json:"request_status"`
	RequestID     string     `json:"request_id"`
	Result        *MediaFile `json:"result,omitempty"`
}

type MediaPreview struct {
	RequestStatus string     `json:"request_status"`
	RequestID     string     `json:"request_id"`
	MediaID       string     `json:"media_id"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Link          string     `json:"link"`
}

// LargeMediaUpload é a resposta do passo INIT do upload em partes
type LargeMediaUpload struct {
	RequestStatus string `json:"request_status"`
	RequestID     string `json:"request_id"`
	UploadID      string `json:"upload_id"`
	AddPath       string `json:"add_path"`
	FinalizePath  string `json:"finalize_path"`
}
