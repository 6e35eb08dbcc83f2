package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
	"github.com/camposys/fieldops/modules/workorders/services"
	"github.com/camposys/fieldops/pkg/eventbus"
)

type mockWorkOrderRepo struct {
	orders map[uuid.UUID]workorder.WorkOrder

	updateStatusErr   error
	updateStatusCalls int
}

func newMockWorkOrderRepo(orders ...workorder.WorkOrder) *mockWorkOrderRepo {
	m := &mockWorkOrderRepo{orders: map[uuid.UUID]workorder.WorkOrder{}}
	for _, o := range orders {
		m.orders[o.ID()] = o
	}
	return m
}

func (m *mockWorkOrderRepo) GetAll(_ context.Context, params *workorder.FindParams) ([]workorder.WorkOrder, error) {
	var out []workorder.WorkOrder
	for _, o := range m.orders {
		if params != nil && params.ClientID != uuid.Nil && o.ClientID() != params.ClientID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *mockWorkOrderRepo) GetByID(_ context.Context, id uuid.UUID) (workorder.WorkOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return workorder.WorkOrder{}, workorder.ErrNotFound
	}
	return o, nil
}

func (m *mockWorkOrderRepo) Create(_ context.Context, w workorder.WorkOrder) (workorder.WorkOrder, error) {
	created := workorder.Hydrate(
		uuid.New(), w.TenantID(), w.ClientID(), w.AssigneeID(),
		w.Title(), w.Address(), string(w.Bucket()), w.Report(),
		w.ScheduledAt(), nil, nil, nil, time.Now(), time.Now(),
	)
	m.orders[created.ID()] = created
	return created, nil
}

func (m *mockWorkOrderRepo) UpdateReport(_ context.Context, id uuid.UUID, report string) (workorder.WorkOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return workorder.WorkOrder{}, workorder.ErrNotFound
	}
	updated := workorder.Hydrate(
		o.ID(), o.TenantID(), o.ClientID(), o.AssigneeID(),
		o.Title(), o.Address(), string(o.Bucket()), report,
		o.ScheduledAt(), o.StartedAt(), o.CompletedAt(), o.CancelledAt(),
		o.CreatedAt(), time.Now(),
	)
	m.orders[id] = updated
	return updated, nil
}

func (m *mockWorkOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, update workorder.StatusUpdate) (workorder.WorkOrder, error) {
	m.updateStatusCalls++
	if m.updateStatusErr != nil {
		return workorder.WorkOrder{}, m.updateStatusErr
	}
	o, ok := m.orders[id]
	if !ok {
		return workorder.WorkOrder{}, workorder.ErrNotFound
	}

	startedAt := o.StartedAt()
	if update.StartedAt != nil {
		startedAt = update.StartedAt
	}
	completedAt := o.CompletedAt()
	if update.ClearCompletedAt {
		completedAt = nil
	} else if update.CompletedAt != nil {
		completedAt = update.CompletedAt
	}
	cancelledAt := o.CancelledAt()
	if update.ClearCancelledAt {
		cancelledAt = nil
	} else if update.CancelledAt != nil {
		cancelledAt = update.CancelledAt
	}

	updated := workorder.Hydrate(
		o.ID(), o.TenantID(), o.ClientID(), o.AssigneeID(),
		o.Title(), o.Address(), string(update.Bucket), o.Report(),
		o.ScheduledAt(), startedAt, completedAt, cancelledAt,
		o.CreatedAt(), time.Now(),
	)
	m.orders[id] = updated
	return updated, nil
}

func hydrated(status, report string) workorder.WorkOrder {
	return workorder.Hydrate(
		uuid.New(), uuid.New(), uuid.New(), uuid.Nil,
		"Instalação de câmeras", "Av. Paulista, 1000", status, report,
		nil, nil, nil, nil, time.Now(), time.Now(),
	)
}

func TestWorkOrderService_Transition(t *testing.T) {
	logger := logrus.New()

	t.Run("successful move persists and publishes effects", func(t *testing.T) {
		order := hydrated("pending", "")
		repo := newMockWorkOrderRepo(order)
		bus := eventbus.NewEventPublisher(logger)

		var received []board.Effect
		bus.Subscribe(func(_ context.Context, e board.Effect) {
			received = append(received, e)
		})

		svc := services.NewWorkOrderService(repo, bus)
		updated, effects, err := svc.Transition(context.Background(), order.ID(), workorder.BucketScheduled)
		require.NoError(t, err)

		assert.Equal(t, workorder.BucketScheduled, updated.Bucket())
		assert.Equal(t, 1, repo.updateStatusCalls)
		assert.Len(t, effects, 2)
		assert.Len(t, received, 2)
		for _, e := range received {
			assert.Equal(t, workorder.BucketScheduled, e.Event.To)
			assert.Equal(t, order.ID(), e.Event.WorkOrderID)
		}
	})

	t.Run("illegal move leaves the order untouched", func(t *testing.T) {
		order := hydrated("pendente", "")
		repo := newMockWorkOrderRepo(order)
		svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logger))

		_, _, err := svc.Transition(context.Background(), order.ID(), workorder.BucketCompleted)
		require.Error(t, err)
		assert.ErrorIs(t, err, board.ErrIllegalTransition)
		assert.Equal(t, 0, repo.updateStatusCalls)

		stored, err := repo.GetByID(context.Background(), order.ID())
		require.NoError(t, err)
		assert.Equal(t, workorder.BucketPending, stored.Bucket())
	})

	t.Run("completion without report is rejected before any write", func(t *testing.T) {
		order := hydrated("em_andamento", "")
		repo := newMockWorkOrderRepo(order)
		svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logger))

		_, _, err := svc.Transition(context.Background(), order.ID(), workorder.BucketCompleted)
		require.Error(t, err)
		assert.ErrorIs(t, err, board.ErrMissingReport)
		assert.Equal(t, 0, repo.updateStatusCalls)
	})

	t.Run("storage failure propagates and suppresses effects", func(t *testing.T) {
		order := hydrated("pending", "")
		repo := newMockWorkOrderRepo(order)
		repo.updateStatusErr = errors.New("connection reset")
		bus := eventbus.NewEventPublisher(logger)

		published := 0
		bus.Subscribe(func(_ context.Context, _ board.Effect) { published++ })

		svc := services.NewWorkOrderService(repo, bus)
		_, _, err := svc.Transition(context.Background(), order.ID(), workorder.BucketInProgress)
		require.Error(t, err)
		assert.Equal(t, 0, published)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := newMockWorkOrderRepo()
		svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logger))

		_, _, err := svc.Transition(context.Background(), uuid.New(), workorder.BucketScheduled)
		require.ErrorIs(t, err, workorder.ErrNotFound)
	})

	t.Run("assigned order notifies the assignee too", func(t *testing.T) {
		order := workorder.Hydrate(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			"Manutenção preventiva", "", "scheduled", "",
			nil, nil, nil, nil, time.Now(), time.Now(),
		)
		repo := newMockWorkOrderRepo(order)
		svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logger))

		_, effects, err := svc.Transition(context.Background(), order.ID(), workorder.BucketInProgress)
		require.NoError(t, err)

		audiences := make([]board.Audience, 0, len(effects))
		for _, e := range effects {
			audiences = append(audiences, e.Audience)
		}
		assert.Contains(t, audiences, board.AudienceAssignee)
	})
}

func TestWorkOrderService_TransitionMany(t *testing.T) {
	movable := hydrated("pending", "")
	blocked := hydrated("concluído", "Relatório final")
	repo := newMockWorkOrderRepo(movable, blocked)
	svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logrus.New()))

	// Duplicate ids collapse into one move; the completed order cannot go to
	// scheduled and is reported as failed.
	updated, failed := svc.TransitionMany(
		context.Background(),
		[]uuid.UUID{movable.ID(), movable.ID(), blocked.ID()},
		workorder.BucketScheduled,
	)

	require.Len(t, updated, 1)
	assert.Equal(t, movable.ID(), updated[0].ID())
	assert.Equal(t, workorder.BucketScheduled, updated[0].Bucket())
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[blocked.ID()], board.ErrIllegalTransition)
}

func TestWorkOrderService_Board(t *testing.T) {
	pending := hydrated("pendente", "")
	done := hydrated("concluído", "Relatório ok")
	repo := newMockWorkOrderRepo(pending, done)
	svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logrus.New()))

	grouped, err := svc.Board(context.Background(), &workorder.FindParams{})
	require.NoError(t, err)

	assert.Len(t, grouped[workorder.BucketPending], 1)
	assert.Len(t, grouped[workorder.BucketCompleted], 1)
	assert.Empty(t, grouped[workorder.BucketCancelled])
}

func TestWorkOrderService_Create(t *testing.T) {
	repo := newMockWorkOrderRepo()
	svc := services.NewWorkOrderService(repo, eventbus.NewEventPublisher(logrus.New()))

	created, err := svc.Create(context.Background(), &workorder.CreateDTO{
		ClientID: uuid.New(),
		Title:    "  Troca de equipamento  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Troca de equipamento", created.Title())
	assert.Equal(t, workorder.BucketPending, created.Bucket())
}
