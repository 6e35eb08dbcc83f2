package workorder

import "github.com/google/uuid"

// TransitionedEvent is published after a status write succeeds. Subscribers
// (notification fan-out) run best-effort; their failures never touch the
// transition itself.
type TransitionedEvent struct {
	TenantID    uuid.UUID
	WorkOrderID uuid.UUID
	ClientID    uuid.UUID
	AssigneeID  uuid.UUID
	Title       string
	From        Bucket
	To          Bucket
}
