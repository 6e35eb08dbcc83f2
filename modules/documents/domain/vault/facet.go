// Package vault implements the virtual folder tree the document browser
// presents over a flat, tagged document collection. Documents carry no real
// folder structure; every level of the tree (year, category, subcategory,
// month) is derived on read from the document's own fields.
package vault

import (
	"strings"

	"github.com/google/uuid"
)

type Dimension string

const (
	DimensionYear        Dimension = "year"
	DimensionCategory    Dimension = "category"
	DimensionSubcategory Dimension = "subcategory"
	DimensionMonth       Dimension = "month"
)

// Sentinel folder names. Unclassifiable documents must still be navigable,
// so every gap maps to a sentinel instead of an error.
const (
	YearNoDate          = "Sem Data"
	MonthKeyNone        = "00"
	MonthGeneral        = "Geral"
	CategoryOther       = "Outros"
	SubcategoryGeneral  = "Geral"
	CategoryWithSubcats = "Laudo"
)

var monthNames = map[string]string{
	MonthKeyNone: MonthGeneral,
	"01":         "Janeiro",
	"02":         "Fevereiro",
	"03":         "Março",
	"04":         "Abril",
	"05":         "Maio",
	"06":         "Junho",
	"07":         "Julho",
	"08":         "Agosto",
	"09":         "Setembro",
	"10":         "Outubro",
	"11":         "Novembro",
	"12":         "Dezembro",
}

// Record is what the vault needs from a document. The document aggregate
// satisfies it directly.
type Record interface {
	ID() uuid.UUID
	ReferenceDate() string
	Category() string
	Subcategory() string
}

// Facets holds one value per classification dimension. MonthKey keeps the
// two-digit month for ordering; Month is the folder name users see.
type Facets struct {
	Year        string
	Category    string
	Subcategory string
	MonthKey    string
	Month       string
}

func (f Facets) Value(dim Dimension) string {
	switch dim {
	case DimensionYear:
		return f.Year
	case DimensionCategory:
		return f.Category
	case DimensionSubcategory:
		return f.Subcategory
	case DimensionMonth:
		return f.Month
	}
	return ""
}

// sortKey returns the value used for ordering folders of this dimension.
func (f Facets) sortKey(dim Dimension) string {
	if dim == DimensionMonth {
		return f.MonthKey
	}
	return f.Value(dim)
}

// Classify derives the facet values of a record. Total and pure: any input,
// however malformed, yields a complete Facets with sentinels filling gaps.
// Reference dates are expected as "YYYY-MM-DD..." strings; anything shorter
// degrades dimension by dimension.
func Classify(r Record) Facets {
	f := Facets{
		Year:        YearNoDate,
		Category:    CategoryOther,
		Subcategory: SubcategoryGeneral,
		MonthKey:    MonthKeyNone,
		Month:       MonthGeneral,
	}

	date := strings.TrimSpace(r.ReferenceDate())
	if len(date) >= 4 {
		f.Year = date[:4]
	}
	if len(date) >= 7 {
		key := date[5:7]
		if name, ok := monthNames[key]; ok {
			f.MonthKey = key
			f.Month = name
		}
	}

	if category := strings.TrimSpace(r.Category()); category != "" {
		f.Category = category
	}
	if subcategory := strings.TrimSpace(r.Subcategory()); subcategory != "" {
		f.Subcategory = subcategory
	}

	return f
}
