package document

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("document not found")

type FindParams struct {
	ClientID uuid.UUID
	Limit    int
	Offset   int
}

type Repository interface {
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]Document, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]Document, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Document, error)
	Create(ctx context.Context, d Document) (Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
