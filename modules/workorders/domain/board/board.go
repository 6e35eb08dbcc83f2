package board

import (
	"sort"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
)

// CalendarNoDate keys calendar entries whose order has no scheduled date.
const CalendarNoDate = "Sem Data"

// Bucketize groups orders by bucket. Every order lands in exactly one
// bucket; the Kanban and calendar views are both projections of this one
// grouping, so a record can never show up in two columns at once.
func Bucketize(orders []workorder.WorkOrder) map[workorder.Bucket][]workorder.WorkOrder {
	grouped := make(map[workorder.Bucket][]workorder.WorkOrder, len(workorder.Buckets()))
	for _, b := range workorder.Buckets() {
		grouped[b] = nil
	}
	for _, order := range orders {
		grouped[order.Bucket()] = append(grouped[order.Bucket()], order)
	}
	return grouped
}

// Calendar projects the same grouping onto scheduled dates. Keys are
// "YYYY-MM-DD"; orders without a scheduled date collect under CalendarNoDate.
func Calendar(orders []workorder.WorkOrder) map[string][]workorder.WorkOrder {
	grouped := Bucketize(orders)
	out := make(map[string][]workorder.WorkOrder)
	for _, b := range workorder.Buckets() {
		for _, order := range grouped[b] {
			key := CalendarNoDate
			if order.ScheduledAt() != nil {
				key = order.ScheduledAt().Format("2006-01-02")
			}
			out[key] = append(out[key], order)
		}
	}
	return out
}

// CalendarDays returns the calendar keys sorted ascending, with the no-date
// bucket last.
func CalendarDays(calendar map[string][]workorder.WorkOrder) []string {
	days := make([]string, 0, len(calendar))
	hasNoDate := false
	for day := range calendar {
		if day == CalendarNoDate {
			hasNoDate = true
			continue
		}
		days = append(days, day)
	}
	sort.Strings(days)
	if hasNoDate {
		days = append(days, CalendarNoDate)
	}
	return days
}
