package models

import "time"

type Document struct {
	ID            string
	TenantID      string
	ClientID      string
	Title         string
	Category      string
	Subcategory   string
	ReferenceDate string
	FileKey       string
	FileSize      int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
