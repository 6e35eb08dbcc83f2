package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/domain/vault"
	"github.com/camposys/fieldops/pkg/composables"
)

type DocumentService struct {
	repo   document.Repository
	schema vault.Schema
}

func NewDocumentService(repo document.Repository) *DocumentService {
	return &DocumentService{
		repo:   repo,
		schema: vault.DocumentSchema(),
	}
}

func (s *DocumentService) Schema() vault.Schema {
	return s.schema
}

// ResolveTree fetches the client's documents fresh and resolves the folder
// view at the given path. Navigation that cannot be resolved degrades to an
// empty folder, never an error.
func (s *DocumentService) ResolveTree(ctx context.Context, clientID uuid.UUID, path []string) ([]vault.ViewNode, error) {
	docs, err := s.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	records := make([]vault.Record, len(docs))
	for i, d := range docs {
		records[i] = d
	}
	return vault.ResolveView(records, path, s.schema), nil
}

// Descend validates a navigation step against the current view before
// applying it. An illegal step keeps the state unchanged and is only logged.
func (s *DocumentService) Descend(ctx context.Context, state vault.State, value string) (vault.State, error) {
	view, err := s.ResolveTree(ctx, state.ClientID(), state.Path())
	if err != nil {
		return state, err
	}
	next, ok := state.Descend(view, value)
	if !ok {
		if logger, found := composables.TryUseLogger(ctx); found {
			logger.WithField("value", value).Debug("ignored invalid descend")
		}
		return state, nil
	}
	return next, nil
}

func (s *DocumentService) GetPaginated(ctx context.Context, params *document.FindParams) ([]document.Document, int64, error) {
	if params == nil {
		params = &document.FindParams{}
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *DocumentService) GetByID(ctx context.Context, id uuid.UUID) (document.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DocumentService) Create(ctx context.Context, dto *document.CreateDTO) (document.Document, error) {
	if dto == nil {
		return document.Document{}, errors.New("missing dto")
	}
	dto.Normalize()
	entity := document.New(
		uuid.Nil,
		dto.ClientID,
		dto.Title,
		dto.Category,
		dto.Subcategory,
		dto.ReferenceDate,
		dto.FileKey,
		dto.FileSize,
	)
	return s.repo.Create(ctx, entity)
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
