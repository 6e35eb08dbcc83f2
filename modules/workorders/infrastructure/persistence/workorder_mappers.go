package persistence

import (
	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/infrastructure/persistence/models"
)

func scanWorkOrderRow(row pgx.Row, m *models.WorkOrder) error {
	return row.Scan(
		&m.ID,
		&m.TenantID,
		&m.ClientID,
		&m.AssigneeID,
		&m.Title,
		&m.Address,
		&m.Status,
		&m.Report,
		&m.ScheduledAt,
		&m.StartedAt,
		&m.CompletedAt,
		&m.CancelledAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

func toDomainWorkOrder(m *models.WorkOrder) (workorder.WorkOrder, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return workorder.WorkOrder{}, gerrors.Wrap(err, "parse work order id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return workorder.WorkOrder{}, gerrors.Wrap(err, "parse tenant id")
	}
	clientID, err := uuid.Parse(m.ClientID)
	if err != nil {
		return workorder.WorkOrder{}, gerrors.Wrap(err, "parse client id")
	}
	assigneeID := uuid.Nil
	if m.AssigneeID != nil {
		assigneeID, err = uuid.Parse(*m.AssigneeID)
		if err != nil {
			return workorder.WorkOrder{}, gerrors.Wrap(err, "parse assignee id")
		}
	}
	return workorder.Hydrate(
		id,
		tenantID,
		clientID,
		assigneeID,
		m.Title,
		m.Address,
		m.Status,
		m.Report,
		m.ScheduledAt,
		m.StartedAt,
		m.CompletedAt,
		m.CancelledAt,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
