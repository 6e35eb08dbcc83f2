package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is one stored file of a client's archive. Year, category,
// subcategory and month folders shown in the browser are derived from these
// fields by the vault package; the document itself knows nothing about
// folders.
type Document struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	clientID      uuid.UUID
	title         string
	category      string
	subcategory   string
	referenceDate string
	fileKey       string
	fileSize      int64
	createdAt     time.Time
	updatedAt     time.Time
}

func New(tenantID, clientID uuid.UUID, title, category, subcategory, referenceDate, fileKey string, fileSize int64) Document {
	return Document{
		tenantID:      tenantID,
		clientID:      clientID,
		title:         strings.TrimSpace(title),
		category:      strings.TrimSpace(category),
		subcategory:   strings.TrimSpace(subcategory),
		referenceDate: strings.TrimSpace(referenceDate),
		fileKey:       strings.TrimSpace(fileKey),
		fileSize:      fileSize,
	}
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	clientID uuid.UUID,
	title string,
	category string,
	subcategory string,
	referenceDate string,
	fileKey string,
	fileSize int64,
	createdAt time.Time,
	updatedAt time.Time,
) Document {
	return Document{
		id:            id,
		tenantID:      tenantID,
		clientID:      clientID,
		title:         strings.TrimSpace(title),
		category:      strings.TrimSpace(category),
		subcategory:   strings.TrimSpace(subcategory),
		referenceDate: strings.TrimSpace(referenceDate),
		fileKey:       fileKey,
		fileSize:      fileSize,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d Document) ID() uuid.UUID         { return d.id }
func (d Document) TenantID() uuid.UUID   { return d.tenantID }
func (d Document) ClientID() uuid.UUID   { return d.clientID }
func (d Document) Title() string         { return d.title }
func (d Document) Category() string      { return d.category }
func (d Document) Subcategory() string   { return d.subcategory }
func (d Document) ReferenceDate() string { return d.referenceDate }
func (d Document) FileKey() string       { return d.fileKey }
func (d Document) FileSize() int64       { return d.fileSize }
func (d Document) CreatedAt() time.Time  { return d.createdAt }
func (d Document) UpdatedAt() time.Time  { return d.updatedAt }
func (d Document) IsZero() bool          { return d.id == uuid.Nil }
