package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/eventbus"
)

type WorkOrderService struct {
	repo      workorder.Repository
	publisher eventbus.EventBus
}

func NewWorkOrderService(repo workorder.Repository, publisher eventbus.EventBus) *WorkOrderService {
	return &WorkOrderService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *WorkOrderService) GetByID(ctx context.Context, id uuid.UUID) (workorder.WorkOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkOrderService) Create(ctx context.Context, dto *workorder.CreateDTO) (workorder.WorkOrder, error) {
	if dto == nil {
		return workorder.WorkOrder{}, errors.New("missing dto")
	}
	dto.Normalize()
	entity := workorder.New(uuid.Nil, dto.ClientID, dto.Title, dto.Address, dto.ScheduledAt)
	return s.repo.Create(ctx, entity)
}

func (s *WorkOrderService) UpdateReport(ctx context.Context, id uuid.UUID, report string) (workorder.WorkOrder, error) {
	return s.repo.UpdateReport(ctx, id, report)
}

// Board fetches the current scope fresh and groups it by bucket.
func (s *WorkOrderService) Board(ctx context.Context, params *workorder.FindParams) (map[workorder.Bucket][]workorder.WorkOrder, error) {
	orders, err := s.repo.GetAll(ctx, params)
	if err != nil {
		return nil, err
	}
	return board.Bucketize(orders), nil
}

// Calendar is the date-keyed projection of the same grouping the board uses.
func (s *WorkOrderService) Calendar(ctx context.Context, params *workorder.FindParams) (map[string][]workorder.WorkOrder, error) {
	orders, err := s.repo.GetAll(ctx, params)
	if err != nil {
		return nil, err
	}
	return board.Calendar(orders), nil
}

// Transition moves a work order to the target bucket. The plan is validated
// first (nothing mutates on a precondition failure), then the status and the
// derived timestamps go to storage as one write. Only after that write
// succeeds are the notification effects published; they are best-effort and
// their failures stay inside the subscribers.
func (s *WorkOrderService) Transition(ctx context.Context, id uuid.UUID, target workorder.Bucket) (workorder.WorkOrder, []board.Effect, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return workorder.WorkOrder{}, nil, err
	}

	plan, err := board.Plan(order, target, time.Now())
	if err != nil {
		return workorder.WorkOrder{}, nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, plan.Update)
	if err != nil {
		return workorder.WorkOrder{}, nil, err
	}

	for _, effect := range plan.Effects {
		s.publisher.Publish(ctx, effect)
	}
	if logger, ok := composables.TryUseLogger(ctx); ok {
		logger.WithField("work_order", id.String()).
			WithField("from", string(plan.From)).
			WithField("to", string(target)).
			Info("work order transitioned")
	}

	return updated, plan.Effects, nil
}

// TransitionMany applies the same move to a selection of orders, one
// transition at a time. Orders that cannot make the move are reported back
// per id; the rest go through unaffected.
func (s *WorkOrderService) TransitionMany(ctx context.Context, ids []uuid.UUID, target workorder.Bucket) ([]workorder.WorkOrder, map[uuid.UUID]error) {
	selection := board.NewSelection()
	for _, id := range ids {
		if !selection.Has(id) {
			selection.Toggle(id)
		}
	}

	var updated []workorder.WorkOrder
	failed := make(map[uuid.UUID]error)
	for _, id := range selection.IDs() {
		order, _, err := s.Transition(ctx, id, target)
		if err != nil {
			failed[id] = err
			continue
		}
		updated = append(updated, order)
	}
	return updated, failed
}
