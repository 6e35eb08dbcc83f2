package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a customer of the field-service operation. Documents and work
// orders both hang off a client.
type Client struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	name      string
	taxID     string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func New(tenantID uuid.UUID, name, taxID, email, phone, address string) Client {
	return Client{
		tenantID: tenantID,
		name:     strings.TrimSpace(name),
		taxID:    strings.TrimSpace(taxID),
		email:    strings.TrimSpace(email),
		phone:    strings.TrimSpace(phone),
		address:  strings.TrimSpace(address),
	}
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	name string,
	taxID string,
	email string,
	phone string,
	address string,
	createdAt time.Time,
	updatedAt time.Time,
) Client {
	return Client{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		taxID:     taxID,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c Client) ID() uuid.UUID        { return c.id }
func (c Client) TenantID() uuid.UUID  { return c.tenantID }
func (c Client) Name() string         { return c.name }

// TaxID is the client's CPF or CNPJ, stored as entered.
func (c Client) TaxID() string { return c.taxID }
func (c Client) Email() string        { return c.email }
func (c Client) Phone() string        { return c.phone }
func (c Client) Address() string      { return c.address }
func (c Client) CreatedAt() time.Time { return c.createdAt }
func (c Client) UpdatedAt() time.Time { return c.updatedAt }
