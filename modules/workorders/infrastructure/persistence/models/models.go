package models

import "time"

type WorkOrder struct {
	ID          string
	TenantID    string
	ClientID    string
	AssigneeID  *string
	Title       string
	Address     string
	Status      string
	Report      string
	ScheduledAt *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
