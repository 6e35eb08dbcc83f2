package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one stored message produced by a work-order transition,
// addressed to one audience. Delivery is best-effort; a notification that
// fails to store is logged and dropped.
type Notification struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	workOrderID uuid.UUID
	audience    string
	title       string
	message     string
	readAt      *time.Time
	createdAt   time.Time
}

func New(tenantID, workOrderID uuid.UUID, audience, title, message string) Notification {
	return Notification{
		tenantID:    tenantID,
		workOrderID: workOrderID,
		audience:    audience,
		title:       title,
		message:     message,
	}
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	workOrderID uuid.UUID,
	audience string,
	title string,
	message string,
	readAt *time.Time,
	createdAt time.Time,
) Notification {
	return Notification{
		id:          id,
		tenantID:    tenantID,
		workOrderID: workOrderID,
		audience:    audience,
		title:       title,
		message:     message,
		readAt:      readAt,
		createdAt:   createdAt,
	}
}

func (n Notification) ID() uuid.UUID          { return n.id }
func (n Notification) TenantID() uuid.UUID    { return n.tenantID }
func (n Notification) WorkOrderID() uuid.UUID { return n.workOrderID }
func (n Notification) Audience() string       { return n.audience }
func (n Notification) Title() string          { return n.title }
func (n Notification) Message() string        { return n.message }
func (n Notification) ReadAt() *time.Time     { return n.readAt }
func (n Notification) CreatedAt() time.Time   { return n.createdAt }
func (n Notification) IsRead() bool           { return n.readAt != nil }
