package models

import "time"

type Client struct {
	ID        string
	TenantID  string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
