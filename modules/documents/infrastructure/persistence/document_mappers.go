package persistence

import (
	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/infrastructure/persistence/models"
)

func scanDocumentRow(row pgx.Row, m *models.Document) error {
	return row.Scan(
		&m.ID,
		&m.TenantID,
		&m.ClientID,
		&m.Title,
		&m.Category,
		&m.Subcategory,
		&m.ReferenceDate,
		&m.FileKey,
		&m.FileSize,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

func toDomainDocument(m *models.Document) (document.Document, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return document.Document{}, gerrors.Wrap(err, "parse document id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return document.Document{}, gerrors.Wrap(err, "parse tenant id")
	}
	clientID, err := uuid.Parse(m.ClientID)
	if err != nil {
		return document.Document{}, gerrors.Wrap(err, "parse client id")
	}
	return document.Hydrate(
		id,
		tenantID,
		clientID,
		m.Title,
		m.Category,
		m.Subcategory,
		m.ReferenceDate,
		m.FileKey,
		m.FileSize,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
