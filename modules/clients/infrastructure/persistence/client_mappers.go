package persistence

import (
	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/modules/clients/infrastructure/persistence/models"
)

func scanClientRow(row pgx.Row, m *models.Client) error {
	return row.Scan(
		&m.ID,
		&m.TenantID,
		&m.Name,
		&m.TaxID,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

func toDomainClient(m *models.Client) (client.Client, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return client.Client{}, gerrors.Wrap(err, "parse client id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return client.Client{}, gerrors.Wrap(err, "parse tenant id")
	}
	return client.Hydrate(
		id,
		tenantID,
		m.Name,
		m.TaxID,
		m.Email,
		m.Phone,
		m.Address,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
