package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camposys/fieldops/modules/documents/domain/aggregates/document"
	"github.com/camposys/fieldops/modules/documents/domain/vault"
	"github.com/camposys/fieldops/modules/documents/services"
)

type mockDocumentRepo struct {
	docs map[uuid.UUID]document.Document
}

func newMockDocumentRepo(docs ...document.Document) *mockDocumentRepo {
	m := &mockDocumentRepo{docs: map[uuid.UUID]document.Document{}}
	for _, d := range docs {
		m.docs[d.ID()] = d
	}
	return m
}

func (m *mockDocumentRepo) GetByClientID(_ context.Context, clientID uuid.UUID) ([]document.Document, error) {
	var out []document.Document
	for _, d := range m.docs {
		if d.ClientID() == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) GetPaginated(_ context.Context, params *document.FindParams) ([]document.Document, int64, error) {
	var out []document.Document
	for _, d := range m.docs {
		if params.ClientID != uuid.Nil && d.ClientID() != params.ClientID {
			continue
		}
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (document.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return document.Document{}, document.ErrNotFound
	}
	return d, nil
}

func (m *mockDocumentRepo) Create(_ context.Context, d document.Document) (document.Document, error) {
	created := document.Hydrate(
		uuid.New(), d.TenantID(), d.ClientID(),
		d.Title(), d.Category(), d.Subcategory(), d.ReferenceDate(),
		d.FileKey(), d.FileSize(), time.Now(), time.Now(),
	)
	m.docs[created.ID()] = created
	return created, nil
}

func (m *mockDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.docs[id]; !ok {
		return document.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func storedDoc(clientID uuid.UUID, date, category, subcategory string) document.Document {
	return document.Hydrate(
		uuid.New(), uuid.New(), clientID,
		"Documento", category, subcategory, date,
		"files/"+uuid.NewString(), 1024, time.Now(), time.Now(),
	)
}

func TestDocumentService_ResolveTree(t *testing.T) {
	clientID := uuid.New()
	repo := newMockDocumentRepo(
		storedDoc(clientID, "2024-03-10", "Contrato", ""),
		storedDoc(clientID, "2024-03-22", "Laudo", "Técnico"),
		storedDoc(clientID, "2023-07-01", "Contrato", ""),
		storedDoc(uuid.New(), "2024-01-01", "Contrato", ""),
	)
	svc := services.NewDocumentService(repo)

	t.Run("root groups by year newest first", func(t *testing.T) {
		view, err := svc.ResolveTree(context.Background(), clientID, nil)
		require.NoError(t, err)
		require.Len(t, view, 2)
		assert.Equal(t, "2024", view[0].Value)
		assert.Equal(t, 2, view[0].Count)
		assert.Equal(t, "2023", view[1].Value)
	})

	t.Run("other client's documents stay invisible", func(t *testing.T) {
		view, err := svc.ResolveTree(context.Background(), clientID, []string{"2024"})
		require.NoError(t, err)
		total := 0
		for _, node := range view {
			total += node.Count
		}
		assert.Equal(t, 2, total)
	})

	t.Run("unknown path resolves to empty folder", func(t *testing.T) {
		view, err := svc.ResolveTree(context.Background(), clientID, []string{"1999"})
		require.NoError(t, err)
		assert.Empty(t, view)
	})
}

func TestDocumentService_Descend(t *testing.T) {
	clientID := uuid.New()
	repo := newMockDocumentRepo(
		storedDoc(clientID, "2024-03-10", "Contrato", ""),
	)
	svc := services.NewDocumentService(repo)

	state := vault.Root().SelectOwner(clientID)

	t.Run("valid folder advances the state", func(t *testing.T) {
		next, err := svc.Descend(context.Background(), state, "2024")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024"}, next.Path())
	})

	t.Run("invalid folder keeps the state", func(t *testing.T) {
		next, err := svc.Descend(context.Background(), state, "2025")
		require.NoError(t, err)
		assert.Equal(t, state, next)
	})
}

func TestDocumentService_Create(t *testing.T) {
	repo := newMockDocumentRepo()
	svc := services.NewDocumentService(repo)

	created, err := svc.Create(context.Background(), &document.CreateDTO{
		ClientID: uuid.New(),
		Title:    "  Contrato de manutenção  ",
		Category: "Contrato",
		FileKey:  "files/contrato.pdf",
		FileSize: 2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "Contrato de manutenção", created.Title())
	assert.False(t, created.IsZero())
}
