package workorder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("work order not found")

type FindParams struct {
	ClientID uuid.UUID
	Buckets  []Bucket
	Limit    int
	Offset   int
}

// StatusUpdate is the single all-or-nothing write the board performs: the
// new status plus whatever timestamps the transition derived. Clear flags
// exist for reopen transitions, which must unset a terminal stamp.
type StatusUpdate struct {
	Bucket           Bucket
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	ClearCompletedAt bool
	ClearCancelledAt bool
	Report           string
}

type Repository interface {
	GetAll(ctx context.Context, params *FindParams) ([]WorkOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (WorkOrder, error)
	Create(ctx context.Context, w WorkOrder) (WorkOrder, error)
	UpdateReport(ctx context.Context, id uuid.UUID, report string) (WorkOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, update StatusUpdate) (WorkOrder, error)
}
