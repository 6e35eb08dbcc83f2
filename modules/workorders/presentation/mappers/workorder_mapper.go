package mappers

import (
	"time"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
	"github.com/camposys/fieldops/modules/workorders/presentation/viewmodels"
)

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func WorkOrderToViewModel(w workorder.WorkOrder) *viewmodels.WorkOrder {
	assigneeID := ""
	if w.AssigneeID() != uuid.Nil {
		assigneeID = w.AssigneeID().String()
	}
	return &viewmodels.WorkOrder{
		ID:          w.ID().String(),
		ClientID:    w.ClientID().String(),
		AssigneeID:  assigneeID,
		Title:       w.Title(),
		Address:     w.Address(),
		Status:      string(w.Bucket()),
		Report:      w.Report(),
		ScheduledAt: formatTime(w.ScheduledAt()),
		StartedAt:   formatTime(w.StartedAt()),
		CompletedAt: formatTime(w.CompletedAt()),
		CancelledAt: formatTime(w.CancelledAt()),
		CreatedAt:   w.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt().Format(time.RFC3339),
	}
}

func workOrdersToViewModels(orders []workorder.WorkOrder) []*viewmodels.WorkOrder {
	out := make([]*viewmodels.WorkOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, WorkOrderToViewModel(o))
	}
	return out
}

// BoardToViewModel renders the bucket grouping as columns in board order,
// each carrying the moves allowed out of it.
func BoardToViewModel(grouped map[workorder.Bucket][]workorder.WorkOrder) []viewmodels.BoardColumn {
	columns := make([]viewmodels.BoardColumn, 0, len(workorder.Buckets()))
	for _, b := range workorder.Buckets() {
		targets := board.AllowedTargets(b)
		names := make([]string, 0, len(targets))
		for _, t := range targets {
			names = append(names, string(t))
		}
		columns = append(columns, viewmodels.BoardColumn{
			Bucket:         string(b),
			Orders:         workOrdersToViewModels(grouped[b]),
			AllowedTargets: names,
		})
	}
	return columns
}

// CalendarToViewModel renders the date grouping in day order, no-date last.
func CalendarToViewModel(calendar map[string][]workorder.WorkOrder) []viewmodels.CalendarDay {
	days := board.CalendarDays(calendar)
	out := make([]viewmodels.CalendarDay, 0, len(days))
	for _, day := range days {
		out = append(out, viewmodels.CalendarDay{
			Date:   day,
			Orders: workOrdersToViewModels(calendar[day]),
		})
	}
	return out
}

func TransitionToViewModel(order workorder.WorkOrder, effects []board.Effect) *viewmodels.TransitionResult {
	notified := make([]string, 0, len(effects))
	for _, e := range effects {
		notified = append(notified, string(e.Audience))
	}
	return &viewmodels.TransitionResult{
		Order:    WorkOrderToViewModel(order),
		Notified: notified,
	}
}
