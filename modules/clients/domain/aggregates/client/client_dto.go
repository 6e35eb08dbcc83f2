package client

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/camposys/fieldops/pkg/constants"
)

type CreateDTO struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.TaxID = strings.TrimSpace(d.TaxID)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	fieldErrors := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		fieldErrors[err.Field()] = err.Tag()
	}
	return fieldErrors, false
}
