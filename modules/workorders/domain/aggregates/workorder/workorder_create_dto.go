package workorder

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/camposys/fieldops/pkg/constants"
)

type CreateDTO struct {
	ClientID    uuid.UUID  `json:"client_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Address     string     `json:"address"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
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
