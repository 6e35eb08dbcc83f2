package document

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/camposys/fieldops/pkg/constants"
)

type CreateDTO struct {
	ClientID      uuid.UUID `json:"client_id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	ReferenceDate string    `json:"reference_date"`
	FileKey       string    `json:"file_key" validate:"required"`
	FileSize      int64     `json:"file_size" validate:"gte=0"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Subcategory = strings.TrimSpace(d.Subcategory)
	d.ReferenceDate = strings.TrimSpace(d.ReferenceDate)
	d.FileKey = strings.TrimSpace(d.FileKey)
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
