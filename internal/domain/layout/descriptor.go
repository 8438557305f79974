// Package layout maps a canonical record onto absolute coordinates of a
// fixed-geometry, paginated canvas. Composition is pure: the same record and
// descriptor always produce the same placements in the same order.
package layout

import (
	"fmt"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
)

// dateParts is the number of writes a composite date decomposes into.
const dateParts = 3

// Point is a canvas coordinate in points, origin top-left, y at the text
// baseline.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FieldPlacement anchors one scalar field. DateOffsets, when set, splits an
// ISO date into day, month and year written at anchor.X plus each offset.
type FieldPlacement struct {
	Key         string    `yaml:"key"`
	Page        int       `yaml:"page"`
	Anchor      Point     `yaml:"anchor"`
	DateOffsets []float64 `yaml:"date_offsets"`
	Size        float64   `yaml:"size"`
}

// Composite reports whether the field is written as three date parts.
func (f FieldPlacement) Composite() bool {
	return len(f.DateOffsets) > 0
}

// Column places one group column at Base.X plus Offset. RangeTo pairs the
// column with a second one rendered as "from - to".
type Column struct {
	Key     string  `yaml:"key"`
	Offset  float64 `yaml:"offset"`
	RangeTo string  `yaml:"range_to"`
}

// GroupPlacement lays out a repeating group: row i sits at
// Base.Y + i*Stride, for at most MaxRows rows.
type GroupPlacement struct {
	Group   string   `yaml:"group"`
	Page    int      `yaml:"page"`
	Base    Point    `yaml:"base"`
	Stride  float64  `yaml:"stride"`
	MaxRows int      `yaml:"max_rows"`
	Size    float64  `yaml:"size"`
	Columns []Column `yaml:"columns"`
}

// Descriptor is the full placement map for one document layout.
type Descriptor struct {
	ID       string           `yaml:"id"`
	Canvas   string           `yaml:"canvas"`
	Font     string           `yaml:"font"`
	FontSize float64          `yaml:"font_size"`
	Fields   []FieldPlacement `yaml:"fields"`
	Groups   []GroupPlacement `yaml:"groups"`
}

// Check validates the descriptor against schema before any composition
// runs: every key is declared, date composites are date fields with exactly
// three offsets, and group bounds are usable.
func (d Descriptor) Check(schema *record.Schema) error {
	subject := "layouts." + d.ID
	if d.Canvas == "" {
		return domain.NewSchemaError(subject, "no canvas reference")
	}
	if d.FontSize <= 0 {
		return domain.NewSchemaError(subject, "font_size must be positive")
	}

	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		at := fmt.Sprintf("%s.fields.%s", subject, f.Key)
		def, ok := schema.Field(f.Key)
		if !ok {
			return domain.NewSchemaError(at, "field is not declared in the schema")
		}
		if seen[f.Key] {
			return domain.NewSchemaError(at, "field placed twice")
		}
		seen[f.Key] = true
		if f.Page < 0 {
			return domain.NewSchemaError(at, "negative page index")
		}
		if f.Composite() {
			if def.Kind != record.KindDate {
				return domain.NewSchemaError(at, "date offsets on a %s field", def.Kind)
			}
			if len(f.DateOffsets) != dateParts {
				return domain.NewSchemaError(at, "date composite needs %d offsets, got %d", dateParts, len(f.DateOffsets))
			}
		}
	}

	for _, g := range d.Groups {
		at := fmt.Sprintf("%s.groups.%s", subject, g.Group)
		def, ok := schema.Group(g.Group)
		if !ok {
			return domain.NewSchemaError(at, "group is not declared in the schema")
		}
		if g.Page < 0 {
			return domain.NewSchemaError(at, "negative page index")
		}
		if g.MaxRows < 1 {
			return domain.NewSchemaError(at, "max_rows must be at least 1")
		}
		if g.Stride <= 0 {
			return domain.NewSchemaError(at, "stride must be positive")
		}
		if len(g.Columns) == 0 {
			return domain.NewSchemaError(at, "no columns placed")
		}
		for _, c := range g.Columns {
			if _, ok := def.Column(c.Key); !ok {
				return domain.NewSchemaError(at+"."+c.Key, "column is not declared in the schema")
			}
			if c.RangeTo != "" {
				if _, ok := def.Column(c.RangeTo); !ok {
					return domain.NewSchemaError(at+"."+c.Key, "range partner %q is not declared", c.RangeTo)
				}
			}
		}
	}

	return nil
}
