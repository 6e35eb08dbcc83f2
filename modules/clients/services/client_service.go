package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/pkg/composables"
)

type ClientService struct {
	repo client.Repository
}

func NewClientService(repo client.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) GetPaginated(ctx context.Context, params *client.FindParams) ([]client.Client, int64, error) {
	items, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (client.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, dto *client.CreateDTO) (client.Client, error) {
	if dto == nil {
		return client.Client{}, errors.New("missing dto")
	}
	dto.Normalize()

	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return client.Client{}, err
	}
	return s.repo.Create(ctx, client.New(tenantID, dto.Name, dto.TaxID, dto.Email, dto.Phone, dto.Address))
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, dto *client.CreateDTO) (client.Client, error) {
	if dto == nil {
		return client.Client{}, errors.New("missing dto")
	}
	dto.Normalize()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return client.Client{}, err
	}
	updated := client.Hydrate(
		existing.ID(), existing.TenantID(),
		dto.Name, dto.TaxID, dto.Email, dto.Phone, dto.Address,
		existing.CreatedAt(), existing.UpdatedAt(),
	)
	return s.repo.Update(ctx, updated)
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
