package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/modules/clients/services"
	"github.com/camposys/fieldops/pkg/composables"
)

type mockClientRepo struct {
	clients map[uuid.UUID]client.Client
}

func newMockClientRepo(items ...client.Client) *mockClientRepo {
	m := &mockClientRepo{clients: map[uuid.UUID]client.Client{}}
	for _, c := range items {
		m.clients[c.ID()] = c
	}
	return m
}

func (m *mockClientRepo) GetPaginated(_ context.Context, params *client.FindParams) ([]client.Client, error) {
	var out []client.Client
	for _, c := range m.clients {
		if params != nil && params.Search != "" && !strings.Contains(strings.ToLower(c.Name()), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockClientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.clients)), nil
}

func (m *mockClientRepo) GetByID(_ context.Context, id uuid.UUID) (client.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return client.Client{}, client.ErrNotFound
	}
	return c, nil
}

func (m *mockClientRepo) Create(_ context.Context, c client.Client) (client.Client, error) {
	created := client.Hydrate(
		uuid.New(), c.TenantID(), c.Name(), c.TaxID(), c.Email(), c.Phone(), c.Address(),
		time.Now(), time.Now(),
	)
	m.clients[created.ID()] = created
	return created, nil
}

func (m *mockClientRepo) Update(_ context.Context, c client.Client) (client.Client, error) {
	if _, ok := m.clients[c.ID()]; !ok {
		return client.Client{}, client.ErrNotFound
	}
	m.clients[c.ID()] = c
	return c, nil
}

func (m *mockClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.clients[id]; !ok {
		return client.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

func TestClientService_Create(t *testing.T) {
	repo := newMockClientRepo()
	svc := services.NewClientService(repo)
	ctx := composables.WithTenantID(context.Background(), uuid.New())

	created, err := svc.Create(ctx, &client.CreateDTO{
		Name:  "  Condomínio Jardim das Flores  ",
		TaxID: "12.345.678/0001-90",
		Email: "sindico@jardim.com.br",
	})
	require.NoError(t, err)
	assert.Equal(t, "Condomínio Jardim das Flores", created.Name())
	assert.Equal(t, "12.345.678/0001-90", created.TaxID())
}

func TestClientService_Create_NoTenant(t *testing.T) {
	svc := services.NewClientService(newMockClientRepo())

	_, err := svc.Create(context.Background(), &client.CreateDTO{Name: "Sem Tenant Ltda"})
	require.ErrorIs(t, err, composables.ErrNoTenant)
}

func TestClientService_Update(t *testing.T) {
	existing := client.Hydrate(
		uuid.New(), uuid.New(), "Antigo Nome", "", "", "", "",
		time.Now(), time.Now(),
	)
	repo := newMockClientRepo(existing)
	svc := services.NewClientService(repo)

	updated, err := svc.Update(context.Background(), existing.ID(), &client.CreateDTO{
		Name:  "Novo Nome",
		Phone: "+55 11 99999-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", updated.Name())
	assert.Equal(t, existing.ID(), updated.ID())

	_, err = svc.Update(context.Background(), uuid.New(), &client.CreateDTO{Name: "Qualquer"})
	require.ErrorIs(t, err, client.ErrNotFound)
}
