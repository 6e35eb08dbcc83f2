package vault_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/camposys/fieldops/modules/documents/domain/vault"
)

type testDoc struct {
	id          uuid.UUID
	date        string
	category    string
	subcategory string
}

func (d testDoc) ID() uuid.UUID        { return d.id }
func (d testDoc) ReferenceDate() string { return d.date }
func (d testDoc) Category() string      { return d.category }
func (d testDoc) Subcategory() string   { return d.subcategory }

func doc(id int, date, category, subcategory string) testDoc {
	return testDoc{
		id:          uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(id)}),
		date:        date,
		category:    category,
		subcategory: subcategory,
	}
}

func TestClassifyCompleteRecord(t *testing.T) {
	f := vault.Classify(doc(1, "2024-03-15", "Laudo", "Elétrico"))

	assert.Equal(t, "2024", f.Year)
	assert.Equal(t, "Laudo", f.Category)
	assert.Equal(t, "Elétrico", f.Subcategory)
	assert.Equal(t, "03", f.MonthKey)
	assert.Equal(t, "Março", f.Month)
}

func TestClassifyFillsEveryGapWithSentinels(t *testing.T) {
	tests := []struct {
		name string
		doc  testDoc
		want vault.Facets
	}{
		{
			name: "everything missing",
			doc:  doc(1, "", "", ""),
			want: vault.Facets{Year: "Sem Data", Category: "Outros", Subcategory: "Geral", MonthKey: "00", Month: "Geral"},
		},
		{
			name: "whitespace only",
			doc:  doc(2, "   ", "  ", " "),
			want: vault.Facets{Year: "Sem Data", Category: "Outros", Subcategory: "Geral", MonthKey: "00", Month: "Geral"},
		},
		{
			name: "year only",
			doc:  doc(3, "2023", "ART", ""),
			want: vault.Facets{Year: "2023", Category: "ART", Subcategory: "Geral", MonthKey: "00", Month: "Geral"},
		},
		{
			name: "garbage month falls back to general",
			doc:  doc(4, "2023-XX-01", "ART", ""),
			want: vault.Facets{Year: "2023", Category: "ART", Subcategory: "Geral", MonthKey: "00", Month: "Geral"},
		},
		{
			name: "date too short for month",
			doc:  doc(5, "2023-0", "", ""),
			want: vault.Facets{Year: "2023", Category: "Outros", Subcategory: "Geral", MonthKey: "00", Month: "Geral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vault.Classify(tt.doc))
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	d := doc(7, "2022-11-30", "Laudo", "")
	first := vault.Classify(d)
	second := vault.Classify(d)
	assert.Equal(t, first, second)
}

func TestClassifyMonthTable(t *testing.T) {
	months := map[string]string{
		"01": "Janeiro", "02": "Fevereiro", "03": "Março", "04": "Abril",
		"05": "Maio", "06": "Junho", "07": "Julho", "08": "Agosto",
		"09": "Setembro", "10": "Outubro", "11": "Novembro", "12": "Dezembro",
	}
	for key, name := range months {
		f := vault.Classify(doc(8, "2024-"+key+"-01", "", ""))
		assert.Equal(t, key, f.MonthKey)
		assert.Equal(t, name, f.Month)
	}
}
