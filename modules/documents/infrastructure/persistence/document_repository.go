package persistence

import (
	"context"
	"errors"
	"fmt"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/infrastructure/persistence/models"
	"github.com/camposys/fieldops/pkg/composables"
	"github.com/camposys/fieldops/pkg/repo"
)

const documentColumns = `
	id, tenant_id, client_id, title,
	COALESCE(category, ''), COALESCE(subcategory, ''), COALESCE(reference_date, ''),
	file_key, file_size, created_at, updated_at
`

type DocumentRepository struct{}

func NewDocumentRepository() document.Repository {
	return &DocumentRepository{}
}

func (r *DocumentRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]document.Document, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE tenant_id = $1 AND client_id = $2
		ORDER BY reference_date DESC NULLS LAST, created_at DESC
	`, tenantID, clientID)
	if err != nil {
		return nil, gerrors.Wrap(err, "query documents by client")
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (r *DocumentRepository) GetPaginated(ctx context.Context, params *document.FindParams) ([]document.Document, int64, error) {
	if params == nil {
		params = &document.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, 0, err
	}

	where := "tenant_id = $1"
	args := []any{tenantID}
	if params.ClientID != uuid.Nil {
		where += " AND client_id = $2"
		args = append(args, params.ClientID)
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE ` + where +
		` ORDER BY created_at DESC ` + repo.FormatLimitOffset(params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "query documents")
	}
	defer rows.Close()

	out, err := scanDocuments(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "count documents")
	}
	return out, total, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (document.Document, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return document.Document{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return document.Document{}, err
	}

	row := tx.QueryRow(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)

	var m models.Document
	if err := scanDocumentRow(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		return document.Document{}, err
	}
	return toDomainDocument(&m)
}

func (r *DocumentRepository) Create(ctx context.Context, d document.Document) (document.Document, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return document.Document{}, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return document.Document{}, err
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO documents (tenant_id, client_id, title, category, subcategory, reference_date, file_key, file_size)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		RETURNING `+documentColumns+`
	`,
		tenantID,
		d.ClientID(),
		d.Title(),
		d.Category(),
		d.Subcategory(),
		d.ReferenceDate(),
		d.FileKey(),
		d.FileSize(),
	)

	var m models.Document
	if err := scanDocumentRow(row, &m); err != nil {
		return document.Document{}, fmt.Errorf("create document: %w", err)
	}
	return toDomainDocument(&m)
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM documents WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return gerrors.Wrap(err, "delete document")
	}
	if tag.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func scanDocuments(rows pgx.Rows) ([]document.Document, error) {
	var out []document.Document
	for rows.Next() {
		var m models.Document
		if err := scanDocumentRow(rows, &m); err != nil {
			return nil, err
		}
		d, err := toDomainDocument(&m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
