package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/workorders/domain/aggregates/workorder"
	"github.com/camposys/fieldops/modules/workorders/infrastructure/persistence/models"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/repo"
)

const workOrderColumns = `
	id, tenant_id, client_id, assignee_id, title, COALESCE(address, ''),
	COALESCE(status, ''), COALESCE(report, ''),
	scheduled_at, started_at, completed_at, cancelled_at, created_at, updated_at
`

type WorkOrderRepository struct{}

func NewWorkOrderRepository() workorder.Repository {
	return &WorkOrderRepository{}
}

func (r *WorkOrderRepository) GetAll(ctx context.Context, params *workorder.FindParams) ([]workorder.WorkOrder, error) {
	if params == nil {
		params = &workorder.FindParams{}
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
	if params.ClientID != uuid.Nil {
		args = append(args, params.ClientID)
		where = append(where, fmt.Sprintf("client_id = $%d", len(args)))
	}

	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY scheduled_at ASC NULLS LAST, created_at ASC ` +
		repo.FormatLimitOffset(params.Limit, params.Offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "query work orders")
	}
	defer rows.Close()

	out, err := scanWorkOrders(rows)
	if err != nil {
		return nil, err
	}

	// Bucket filtering happens after the synonym fold: raw status values in
	// storage are heterogeneous, so a SQL filter on them would miss synonyms.
	if len(params.Buckets) > 0 {
		wanted := make(map[workorder.Bucket]bool, len(params.Buckets))
		for _, b := range params.Buckets {
			wanted[b] = true
		}
		filtered := out[:0]
		for _, o := range out {
			if wanted[o.Bucket()] {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	return out, nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (workorder.WorkOrder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	row := tx.QueryRow(ctx, `
		SELECT `+workOrderColumns+`
		FROM work_orders
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)

	var m models.WorkOrder
	if err := scanWorkOrderRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workorder.WorkOrder{}, workorder.ErrNotFound
		}
		return workorder.WorkOrder{}, err
	}
	return toDomainWorkOrder(&m)
}

func (r *WorkOrderRepository) Create(ctx context.Context, w workorder.WorkOrder) (workorder.WorkOrder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	var assigneeID *uuid.UUID
	if w.AssigneeID() != uuid.Nil {
		v := w.AssigneeID()
		assigneeID = &v
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO work_orders (tenant_id, client_id, assignee_id, title, address, status, scheduled_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING `+workOrderColumns+`
	`,
		tenantID,
		w.ClientID(),
		assigneeID,
		w.Title(),
		w.Address(),
		string(w.Bucket()),
		w.ScheduledAt(),
	)

	var m models.WorkOrder
	if err := scanWorkOrderRow(row, &m); err != nil {
		return workorder.WorkOrder{}, fmt.Errorf("create work order: %w", err)
	}
	return toDomainWorkOrder(&m)
}

func (r *WorkOrderRepository) UpdateReport(ctx context.Context, id uuid.UUID, report string) (workorder.WorkOrder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	row := tx.QueryRow(ctx, `
		UPDATE work_orders
		SET report = $3, updated_at = now()
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+workOrderColumns+`
	`, tenantID, id, report)

	var m models.WorkOrder
	if err := scanWorkOrderRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workorder.WorkOrder{}, workorder.ErrNotFound
		}
		return workorder.WorkOrder{}, err
	}
	return toDomainWorkOrder(&m)
}

// UpdateStatus is the board's single all-or-nothing write: status and the
// derived timestamps change together or not at all.
func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update workorder.StatusUpdate) (workorder.WorkOrder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return workorder.WorkOrder{}, err
	}

	row := tx.QueryRow(ctx, `
		UPDATE work_orders
		SET status = $3,
		    started_at = COALESCE($4, started_at),
		    completed_at = CASE WHEN $6 THEN NULL ELSE COALESCE($5, completed_at) END,
		    cancelled_at = CASE WHEN $8 THEN NULL ELSE COALESCE($7, cancelled_at) END,
		    updated_at = now()
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+workOrderColumns+`
	`,
		tenantID,
		id,
		string(update.Bucket),
		update.StartedAt,
		update.CompletedAt,
		update.ClearCompletedAt,
		update.CancelledAt,
		update.ClearCancelledAt,
	)

	var m models.WorkOrder
	if err := scanWorkOrderRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workorder.WorkOrder{}, workorder.ErrNotFound
		}
		return workorder.WorkOrder{}, gerrors.Wrap(err, "update work order status")
	}
	return toDomainWorkOrder(&m)
}

func scanWorkOrders(rows pgx.Rows) ([]workorder.WorkOrder, error) {
	var out []workorder.WorkOrder
	for rows.Next() {
		var m models.WorkOrder
		if err := scanWorkOrderRow(rows, &m); err != nil {
			return nil, err
		}
		w, err := toDomainWorkOrder(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
