package workorder

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkOrder is one installation or service task moving across the board.
type WorkOrder struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	clientID    uuid.UUID
	assigneeID  uuid.UUID
	title       string
	address     string
	bucket      Bucket
	report      string
	scheduledAt *time.Time
	startedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func New(tenantID, clientID uuid.UUID, title, address string, scheduledAt *time.Time) WorkOrder {
	return WorkOrder{
		tenantID:    tenantID,
		clientID:    clientID,
		title:       strings.TrimSpace(title),
		address:     strings.TrimSpace(address),
		bucket:      BucketPending,
		scheduledAt: scheduledAt,
	}
}

// Hydrate rebuilds a work order from storage. The raw status goes through
// the synonym table here, so the rest of the module never sees raw strings.
func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	clientID uuid.UUID,
	assigneeID uuid.UUID,
	title string,
	address string,
	rawStatus string,
	report string,
	scheduledAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	cancelledAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) WorkOrder {
	return WorkOrder{
		id:          id,
		tenantID:    tenantID,
		clientID:    clientID,
		assigneeID:  assigneeID,
		title:       strings.TrimSpace(title),
		address:     strings.TrimSpace(address),
		bucket:      NormalizeStatus(rawStatus),
		report:      report,
		scheduledAt: scheduledAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (w WorkOrder) ID() uuid.UUID           { return w.id }
func (w WorkOrder) TenantID() uuid.UUID     { return w.tenantID }
func (w WorkOrder) ClientID() uuid.UUID     { return w.clientID }
func (w WorkOrder) AssigneeID() uuid.UUID   { return w.assigneeID }
func (w WorkOrder) Title() string           { return w.title }
func (w WorkOrder) Address() string         { return w.address }
func (w WorkOrder) Bucket() Bucket          { return w.bucket }
func (w WorkOrder) Report() string          { return w.report }
func (w WorkOrder) ScheduledAt() *time.Time { return w.scheduledAt }
func (w WorkOrder) StartedAt() *time.Time   { return w.startedAt }
func (w WorkOrder) CompletedAt() *time.Time { return w.completedAt }
func (w WorkOrder) CancelledAt() *time.Time { return w.cancelledAt }
func (w WorkOrder) CreatedAt() time.Time    { return w.createdAt }
func (w WorkOrder) UpdatedAt() time.Time    { return w.updatedAt }
func (w WorkOrder) IsZero() bool            { return w.id == uuid.Nil }

func (w WorkOrder) HasReport() bool {
	return strings.TrimSpace(w.report) != ""
}
