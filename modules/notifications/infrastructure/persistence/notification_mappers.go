package persistence

import (
	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/notifications/domain/entities/notification"
	"github.com/camposys/fieldops/modules/notifications/infrastructure/persistence/models"
)

func scanNotificationRow(row pgx.Row, m *models.Notification) error {
	return row.Scan(
		&m.ID,
		&m.TenantID,
		&m.WorkOrderID,
		&m.Audience,
		&m.Title,
		&m.Message,
		&m.ReadAt,
		&m.CreatedAt,
	)
}

func toDomainNotification(m *models.Notification) (notification.Notification, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return notification.Notification{}, gerrors.Wrap(err, "parse notification id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return notification.Notification{}, gerrors.Wrap(err, "parse tenant id")
	}
	workOrderID, err := uuid.Parse(m.WorkOrderID)
	if err != nil {
		return notification.Notification{}, gerrors.Wrap(err, "parse work order id")
	}
	return notification.Hydrate(
		id,
		tenantID,
		workOrderID,
		m.Audience,
		m.Title,
		m.Message,
		m.ReadAt,
		m.CreatedAt,
	), nil
}
