package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/notifications/domain/entities/notification"
	"github.com/camposys/fieldops/modules/notifications/services"
	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/domain/board"
)

type mockNotificationRepo struct {
	created []notification.Notification
}

func (m *mockNotificationRepo) GetPaginated(_ context.Context, _ *notification.FindParams) ([]notification.Notification, error) {
	return m.created, nil
}

func (m *mockNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	m.created = append(m.created, n)
	return n, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, _ uuid.UUID) error {
	return nil
}

func TestNotificationService_OnWorkOrderTransitioned(t *testing.T) {
	// No pool in context: the handler's transaction cannot start, so the
	// effect must be dropped without panicking.
	t.Run("storage failure is swallowed", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		svc := services.NewNotificationService(repo)

		assert.NotPanics(t, func() {
			svc.OnWorkOrderTransitioned(context.Background(), board.Effect{
				Audience: board.AudienceAdmins,
				Event: workorder.TransitionedEvent{
					TenantID:    uuid.New(),
					WorkOrderID: uuid.New(),
					Title:       "Instalação de alarme",
					From:        workorder.BucketPending,
					To:          workorder.BucketScheduled,
				},
			})
		})
		assert.Empty(t, repo.created)
	})
}

func TestNotificationService_GetPaginated(t *testing.T) {
	repo := &mockNotificationRepo{
		created: []notification.Notification{
			notification.New(uuid.New(), uuid.New(), "admins", "Troca de sensor", "Ordem de serviço movida"),
		},
	}
	svc := services.NewNotificationService(repo)

	items, err := svc.GetPaginated(context.Background(), &notification.FindParams{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "admins", items[0].Audience())
}
