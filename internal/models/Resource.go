package models

import "time"

type Resource struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Size           int64     `json:"size"`
	DataURL        string    `json:"dataUrl"`
	UploadedBy     string    `json:"uploadedBy"`
	UploadedByName string    `json:"uploadedByName"`
	UploadedAt     time.Time `json:"uploadedAt"`
}

type ResourceDraft struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Size           int64  `json:"size" validate:"min:0"`
	DataURL        string `json:"dataUrl"`
	UploadedBy     string `json:"uploadedBy"`
	UploadedByName string `json:"uploadedByName"`
}
