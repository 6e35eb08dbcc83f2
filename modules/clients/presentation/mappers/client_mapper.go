package mappers

import (
	"time"

	"github.com/camposys/fieldops/modules/clients/domain/aggregates/client"
	"github.com/camposys/fieldops/modules/clients/presentation/viewmodels"
)

func ClientToViewModel(c client.Client) *viewmodels.Client {
	return &viewmodels.Client{
		ID:        c.ID().String(),
		Name:      c.Name(),
		TaxID:     c.TaxID(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt().Format(time.RFC3339),
	}
}
