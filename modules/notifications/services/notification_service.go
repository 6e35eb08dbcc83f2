package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/notifications/domain/entities/notification"
	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
	"github.com/camposys/fieldops/pkg/composables"
)

// bucketLabels renders buckets in the wording notifications use.
var bucketLabels = map[workorder.Bucket]string{
	workorder.BucketPending:    "pendente",
	workorder.BucketScheduled:  "agendada",
	workorder.BucketInProgress: "em andamento",
	workorder.BucketCompleted:  "concluída",
	workorder.BucketCancelled:  "cancelada",
}

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) GetPaginated(ctx context.Context, params *notification.FindParams) ([]notification.Notification, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

// OnWorkOrderTransitioned stores one notification per published effect. It
// runs in its own transaction so a storage failure here never reaches the
// transition that produced the effect; the failure is logged and the effect
// dropped.
func (s *NotificationService) OnWorkOrderTransitioned(ctx context.Context, effect board.Effect) {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		message := fmt.Sprintf(
			"Ordem de serviço %q movida para %s",
			effect.Event.Title,
			bucketLabels[effect.Event.To],
		)
		_, err := s.repo.Create(txCtx, notification.New(
			effect.Event.TenantID,
			effect.Event.WorkOrderID,
			string(effect.Audience),
			effect.Event.Title,
			message,
		))
		return err
	})
	if err != nil {
		if logger, ok := composables.TryUseLogger(ctx); ok {
			logger.WithField("work_order", effect.Event.WorkOrderID.String()).
				WithField("audience", string(effect.Audience)).
				WithError(err).
				Warn("notification dispatch failed")
		}
	}
}
