package board_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
)

func scheduledOrder(rawStatus string, scheduledAt *time.Time) workorder.WorkOrder {
	return workorder.Hydrate(
		uuid.New(), uuid.New(), uuid.New(), uuid.Nil,
		"Manutenção preventiva", "",
		rawStatus, "",
		scheduledAt, nil, nil, nil,
		time.Now(), time.Now(),
	)
}

func TestNormalizeStatusFoldsSynonyms(t *testing.T) {
	tests := map[string]workorder.Bucket{
		"pending":      workorder.BucketPending,
		"pendente":     workorder.BucketPending,
		"":             workorder.BucketPending,
		"  Pendente  ": workorder.BucketPending,
		"agendado":     workorder.BucketScheduled,
		"em_andamento": workorder.BucketInProgress,
		"em andamento": workorder.BucketInProgress,
		"concluído":    workorder.BucketCompleted,
		"finalizado":   workorder.BucketCompleted,
		"cancelado":    workorder.BucketCancelled,
		"canceled":     workorder.BucketCancelled,
		"whatever":     workorder.BucketPending,
	}
	for raw, want := range tests {
		assert.Equal(t, want, workorder.NormalizeStatus(raw), "raw=%q", raw)
	}
}

func TestBucketizeExactlyOneBucketPerOrder(t *testing.T) {
	orders := []workorder.WorkOrder{
		scheduledOrder("pending", nil),
		scheduledOrder("pendente", nil),
		scheduledOrder("", nil),
		scheduledOrder("agendado", nil),
		scheduledOrder("concluído", nil),
	}

	grouped := board.Bucketize(orders)

	assert.Len(t, grouped[workorder.BucketPending], 3)
	assert.Len(t, grouped[workorder.BucketScheduled], 1)
	assert.Len(t, grouped[workorder.BucketCompleted], 1)
	assert.Empty(t, grouped[workorder.BucketInProgress])
	assert.Empty(t, grouped[workorder.BucketCancelled])

	total := 0
	seen := map[uuid.UUID]bool{}
	for _, b := range workorder.Buckets() {
		for _, o := range grouped[b] {
			require.False(t, seen[o.ID()], "order in more than one bucket")
			seen[o.ID()] = true
			total++
		}
	}
	assert.Equal(t, len(orders), total)
}

func TestCalendarIsConsistentWithKanban(t *testing.T) {
	day1 := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)
	orders := []workorder.WorkOrder{
		scheduledOrder("agendado", &day1),
		scheduledOrder("agendado", &day2),
		scheduledOrder("pendente", nil),
	}

	calendar := board.Calendar(orders)

	require.Len(t, calendar["2024-06-10"], 1)
	require.Len(t, calendar["2024-06-12"], 1)
	require.Len(t, calendar[board.CalendarNoDate], 1)

	// Same records, same buckets, in both projections.
	grouped := board.Bucketize(orders)
	calendarTotal := 0
	for _, day := range calendar {
		calendarTotal += len(day)
	}
	kanbanTotal := 0
	for _, b := range workorder.Buckets() {
		kanbanTotal += len(grouped[b])
	}
	assert.Equal(t, kanbanTotal, calendarTotal)

	assert.Equal(t, []string{"2024-06-10", "2024-06-12", board.CalendarNoDate}, board.CalendarDays(calendar))
}

func TestSelectionDoesNotAffectBuckets(t *testing.T) {
	orders := []workorder.WorkOrder{
		scheduledOrder("pending", nil),
		scheduledOrder("agendado", nil),
	}

	sel := board.NewSelection()
	sel.Toggle(orders[0].ID())
	assert.True(t, sel.Has(orders[0].ID()))
	assert.False(t, sel.Has(orders[1].ID()))

	grouped := board.Bucketize(orders)
	assert.Len(t, grouped[workorder.BucketPending], 1)
	assert.Len(t, grouped[workorder.BucketScheduled], 1)

	sel.Toggle(orders[0].ID())
	assert.False(t, sel.Has(orders[0].ID()))

	sel.Toggle(orders[0].ID())
	sel.Toggle(orders[1].ID())
	assert.Len(t, sel.IDs(), 2)
	sel.Clear()
	assert.Empty(t, sel.IDs())
}
