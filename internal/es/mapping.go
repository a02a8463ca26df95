package es

import (
	"strings"

	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

const (
	CompanyDocType = "company"
	JoinField      = "company_relation"
	dateFormat     = "strict_date"
)

// MappingBuilder describes the company index the generated filters run against.
type MappingBuilder struct {
	sectorField string
}

func NewMappingBuilder(cfg config.Config) *MappingBuilder {
	return &MappingBuilder{sectorField: cfg.SectorField}
}

// Mapping returns the index mapping: parent company documents with nested
// financial filters and import/export event children joined on JoinField.
func (b *MappingBuilder) Mapping() types.TypeMapping {
	props := map[string]types.Property{
		StatusField: types.NewIntegerNumberProperty(),
		CIDField:    types.NewKeywordProperty(),
		"ecommerce": b.objectProperty(map[string]types.Property{
			"is_ecommerce": types.NewBooleanProperty(),
		}),
		TPSField:             types.NewKeywordProperty(),
		FinancialFiltersPath: b.financialFiltersProperty(),
		ImportDateField:      b.dateProperty(),
		ExportDateField:      b.dateProperty(),
		JoinField:            b.joinProperty(),
	}
	b.setPath(props, b.sectorField, types.NewKeywordProperty())

	return types.TypeMapping{Properties: props}
}

func (b *MappingBuilder) financialFiltersProperty() types.Property {
	nested := types.NewNestedProperty()
	nested.Properties = map[string]types.Property{
		"revenue": types.NewLongNumberProperty(),
		"cash":    types.NewLongNumberProperty(),
	}
	return nested
}

func (b *MappingBuilder) joinProperty() types.Property {
	join := types.NewJoinProperty()
	join.Relations = map[string][]string{
		CompanyDocType: {ImportEventsType, ExportEventsType},
	}
	return join
}

func (b *MappingBuilder) dateProperty() types.Property {
	date := types.NewDateProperty()
	format := dateFormat
	date.Format = &format
	return date
}

func (b *MappingBuilder) objectProperty(props map[string]types.Property) types.Property {
	obj := types.NewObjectProperty()
	obj.Properties = props
	return obj
}

// setPath places prop at a dotted path such as "sector.id", creating object
// properties for the intermediate segments.
func (b *MappingBuilder) setPath(props map[string]types.Property, path string, prop types.Property) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		props[head] = prop
		return
	}

	obj, ok := props[head].(*types.ObjectProperty)
	if !ok {
		obj = types.NewObjectProperty()
		props[head] = obj
	}
	if obj.Properties == nil {
		obj.Properties = map[string]types.Property{}
	}
	b.setPath(obj.Properties, rest, prop)
}
