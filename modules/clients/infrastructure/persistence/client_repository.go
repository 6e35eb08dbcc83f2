package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/modules/clients/infrastructure/persistence/models"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/repo"
)

const clientColumns = `
	id, tenant_id, name, COALESCE(tax_id, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(address, ''), created_at, updated_at
`

type ClientRepository struct{}

func NewClientRepository() client.Repository {
	return &ClientRepository{}
}

func (r *ClientRepository) GetPaginated(ctx context.Context, params *client.FindParams) ([]client.Client, error) {
	if params == nil {
		params = &client.FindParams{}
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
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY name ASC ` + repo.FormatLimitOffset(params.Limit, params.Offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "query clients")
	}
	defer rows.Close()

	var out []client.Client
	for rows.Next() {
		var m models.Client
		if err := scanClientRow(rows, &m); err != nil {
			return nil, err
		}
		c, err := toDomainClient(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE tenant_id = $1`, tenantID).Scan(&count); err != nil {
		return 0, gerrors.Wrap(err, "count clients")
	}
	return count, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return client.Client{}, err
	}

	row := tx.QueryRow(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)

	var m models.Client
	if err := scanClientRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, err
	}
	return toDomainClient(&m)
}

func (r *ClientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return client.Client{}, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO clients (tenant_id, name, tax_id, email, phone, address)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING `+clientColumns+`
	`, tenantID, c.Name(), c.TaxID(), c.Email(), c.Phone(), c.Address())

	var m models.Client
	if err := scanClientRow(row, &m); err != nil {
		return client.Client{}, fmt.Errorf("create client: %w", err)
	}
	return toDomainClient(&m)
}

func (r *ClientRepository) Update(ctx context.Context, c client.Client) (client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return client.Client{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return client.Client{}, err
	}

	row := tx.QueryRow(ctx, `
		UPDATE clients
		SET name = $3, tax_id = NULLIF($4, ''), email = NULLIF($5, ''),
		    phone = NULLIF($6, ''), address = NULLIF($7, ''), updated_at = now()
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+clientColumns+`
	`, tenantID, c.ID(), c.Name(), c.TaxID(), c.Email(), c.Phone(), c.Address())

	var m models.Client
	if err := scanClientRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, err
	}
	return toDomainClient(&m)
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return gerrors.Wrap(err, "delete client")
	}
	if tag.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}
