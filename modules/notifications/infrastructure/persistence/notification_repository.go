package persistence

import (
	"context"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/notifications/domain/entities/notification"
	"github.com/camposys/fieldops/modules/notifications/infrastructure/persistence/models"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/repo"
)

const notificationColumns = `
	id, tenant_id, work_order_id, audience, title, COALESCE(message, ''),
	read_at, created_at
`

type NotificationRepository struct{}

func NewNotificationRepository() notification.Repository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) GetPaginated(ctx context.Context, params *notification.FindParams) ([]notification.Notification, error) {
	if params == nil {
		params = &notification.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where := []string{"tenant_id = $1"}
	args := []any{tenantID}
	if params.Audience != "" {
		args = append(args, params.Audience)
		where = append(where, fmt.Sprintf("audience = $%d", len(args)))
	}
	if params.UnreadOnly {
		where = append(where, "read_at IS NULL")
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at DESC ` + repo.FormatLimitOffset(params.Limit, params.Offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "query notifications")
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		var m models.Notification
		if err := scanNotificationRow(rows, &m); err != nil {
			return nil, err
		}
		n, err := toDomainNotification(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return notification.Notification{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return notification.Notification{}, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO notifications (tenant_id, work_order_id, audience, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationColumns+`
	`, tenantID, n.WorkOrderID(), n.Audience(), n.Title(), n.Message())

	var m models.Notification
	if err := scanNotificationRow(row, &m); err != nil {
		return notification.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	return toDomainNotification(&m)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE notifications
		SET read_at = now()
		WHERE tenant_id = $1 AND id = $2 AND read_at IS NULL
	`, tenantID, id)
	if err != nil {
		return gerrors.Wrap(err, "mark notification read")
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}
