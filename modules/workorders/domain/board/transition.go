// Package board holds the pure workflow logic of the work-order board:
// bucket grouping, the transition table with its preconditions, and the
// effect descriptors a successful move produces. Nothing here touches
// storage; the service layer applies what Plan returns.
package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/pkg/serrors"
)

var (
	ErrIllegalTransition = serrors.NewError("WORKORDER_ILLEGAL_TRANSITION", "status transition not allowed", "")
	ErrMissingReport     = serrors.NewError("WORKORDER_REPORT_REQUIRED", "missing required field: execution report", "")
)

// allowedTransitions is the whole workflow as data: forward moves along the
// bucket order, cancellation from any non-terminal bucket, and the explicit
// reopen moves out of the terminal buckets.
var allowedTransitions = map[workorder.Bucket][]workorder.Bucket{
	workorder.BucketPending:    {workorder.BucketScheduled, workorder.BucketInProgress, workorder.BucketCancelled},
	workorder.BucketScheduled:  {workorder.BucketInProgress, workorder.BucketPending, workorder.BucketCancelled},
	workorder.BucketInProgress: {workorder.BucketCompleted, workorder.BucketScheduled, workorder.BucketCancelled},
	workorder.BucketCompleted:  {workorder.BucketInProgress},
	workorder.BucketCancelled:  {workorder.BucketPending},
}

// CanTransition reports whether the move is in the transition table.
func CanTransition(from, to workorder.Bucket) bool {
	for _, target := range allowedTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the buckets reachable from the given one, in table
// order. The board UI uses this to render the available actions per column.
func AllowedTargets(from workorder.Bucket) []workorder.Bucket {
	targets := make([]workorder.Bucket, len(allowedTransitions[from]))
	copy(targets, allowedTransitions[from])
	return targets
}

// Audience identifies one group of notification recipients.
type Audience string

const (
	AudienceClientUsers Audience = "client_users"
	AudienceAssignee    Audience = "assignee"
	AudienceAdmins      Audience = "admins"
)

// Effect describes one best-effort side effect of a transition. The caller
// dispatches effects after the status write succeeds; a failed effect is
// logged and dropped, never rolled back into the transition.
type Effect struct {
	Audience Audience
	Event    workorder.TransitionedEvent
}

// Transition is a validated, not-yet-applied move: the status update to hand
// the repository plus the effects to dispatch once that write succeeds.
type Transition struct {
	From    workorder.Bucket
	Update  workorder.StatusUpdate
	Effects []Effect
}

// Plan validates moving the order to the target bucket and derives the
// timestamps the write must carry. The order itself is never mutated;
// a failed plan leaves everything exactly as it was.
//
// Preconditions: completing requires a non-empty execution report.
// Derived stamps: first entry into in_progress sets StartedAt; completed
// sets CompletedAt; cancelled sets CancelledAt; reopening clears the
// terminal stamp it leaves behind.
func Plan(order workorder.WorkOrder, target workorder.Bucket, now time.Time) (Transition, error) {
	from := order.Bucket()
	if !CanTransition(from, target) {
		return Transition{}, ErrIllegalTransition
	}
	if target == workorder.BucketCompleted && !order.HasReport() {
		return Transition{}, ErrMissingReport
	}

	update := workorder.StatusUpdate{Bucket: target, Report: order.Report()}
	switch target {
	case workorder.BucketInProgress:
		if order.StartedAt() == nil {
			update.StartedAt = &now
		}
		if from == workorder.BucketCompleted {
			update.ClearCompletedAt = true
		}
	case workorder.BucketCompleted:
		update.CompletedAt = &now
	case workorder.BucketCancelled:
		update.CancelledAt = &now
	case workorder.BucketPending:
		if from == workorder.BucketCancelled {
			update.ClearCancelledAt = true
		}
	}

	event := workorder.TransitionedEvent{
		TenantID:    order.TenantID(),
		WorkOrderID: order.ID(),
		ClientID:    order.ClientID(),
		AssigneeID:  order.AssigneeID(),
		Title:       order.Title(),
		From:        from,
		To:          target,
	}
	effects := []Effect{
		{Audience: AudienceClientUsers, Event: event},
		{Audience: AudienceAdmins, Event: event},
	}
	if order.AssigneeID() != uuid.Nil {
		effects = append(effects, Effect{Audience: AudienceAssignee, Event: event})
	}

	return Transition{From: from, Update: update, Effects: effects}, nil
}
