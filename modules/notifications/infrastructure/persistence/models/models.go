package models

import "time"

type Notification struct {
	ID          string
	TenantID    string
	WorkOrderID string
	Audience    string
	Title       string
	Message     string
	ReadAt      *time.Time
	CreatedAt   time.Time
}
