// Package record defines the closed dossier schema, the canonical Record
// snapshot a wizard session owns, and the Assembler that turns raw input
// into that snapshot.
package record

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

// copyPrefix marks a default that copies another field's value.
const copyPrefix = "from:"

// FieldDef declares one scalar slot of the record.
type FieldDef struct {
	Key     string
	Kind    Kind
	Label   string
	Default string
	Options []string
	// OtherField names a free-text field that replaces this choice when the
	// chosen value is the schema's other sentinel.
	OtherField string
}

// CopyFrom returns the source key of a "from:<key>" default.
func (f FieldDef) CopyFrom() (string, bool) {
	src, ok := strings.CutPrefix(f.Default, copyPrefix)
	return src, ok && src != ""
}

// ColumnDef declares one column of a repeating group.
type ColumnDef struct {
	Key     string
	Kind    Kind
	Label   string
	Default string
	Options []string
	// OtherColumn names a text column of the same group that replaces this
	// cell when it holds the other sentinel.
	OtherColumn string
}

// GroupDef declares a repeating group and its ordered columns.
type GroupDef struct {
	Name    string
	Label   string
	Columns []ColumnDef
}

// Column returns the column declared under key.
func (g GroupDef) Column(key string) (ColumnDef, bool) {
	for _, c := range g.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnDef{}, false
}

// ColumnKeys returns the declared column keys in order.
func (g GroupDef) ColumnKeys() []string {
	keys := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		keys[i] = c.Key
	}
	return keys
}

// Schema is the closed, ordered set of fields and groups a record may hold.
// Construct with NewSchema so the structural checks run once.
type Schema struct {
	fields        []FieldDef
	groups        []GroupDef
	fieldIndex    map[string]int
	groupIndex    map[string]int
	otherSentinel string
}

// NewSchema validates and indexes the declarations. Field keys and group
// names share one namespace.
func NewSchema(fields []FieldDef, groups []GroupDef, otherSentinel string) (*Schema, error) {
	s := &Schema{
		fields:        slices.Clone(fields),
		groups:        slices.Clone(groups),
		fieldIndex:    make(map[string]int, len(fields)),
		groupIndex:    make(map[string]int, len(groups)),
		otherSentinel: otherSentinel,
	}

	for i, f := range fields {
		if strings.TrimSpace(f.Key) == "" {
			return nil, domain.NewSchemaError("schema.fields", "field %d has an empty key", i)
		}
		if !f.Kind.IsValid() {
			return nil, domain.NewSchemaError(f.Key, "unknown kind %q", f.Kind)
		}
		if _, dup := s.fieldIndex[f.Key]; dup {
			return nil, domain.NewSchemaError(f.Key, "field declared twice")
		}
		s.fieldIndex[f.Key] = i
	}

	for i, g := range groups {
		if _, clash := s.fieldIndex[g.Name]; clash {
			return nil, domain.NewSchemaError(g.Name, "group name collides with a field key")
		}
		if _, dup := s.groupIndex[g.Name]; dup {
			return nil, domain.NewSchemaError(g.Name, "group declared twice")
		}
		if len(g.Columns) == 0 {
			return nil, domain.NewSchemaError(g.Name, "group declares no columns")
		}
		seen := make(map[string]bool, len(g.Columns))
		for _, c := range g.Columns {
			if !c.Kind.IsValid() {
				return nil, domain.NewSchemaError(g.Name+"."+c.Key, "unknown kind %q", c.Kind)
			}
			if seen[c.Key] {
				return nil, domain.NewSchemaError(g.Name+"."+c.Key, "column declared twice")
			}
			seen[c.Key] = true
		}
		for _, c := range g.Columns {
			if c.OtherColumn == "" {
				continue
			}
			other, known := g.Column(c.OtherColumn)
			if !known {
				return nil, domain.NewSchemaError(g.Name+"."+c.Key, "other override names undeclared column %q", c.OtherColumn)
			}
			if other.Kind != KindText {
				return nil, domain.NewSchemaError(g.Name+"."+c.Key, "other override %q must be a text column", c.OtherColumn)
			}
		}
		s.groupIndex[g.Name] = i
	}

	for _, f := range fields {
		if src, ok := f.CopyFrom(); ok {
			if _, known := s.fieldIndex[src]; !known {
				return nil, domain.NewSchemaError(f.Key, "default copies undeclared field %q", src)
			}
		}
		if f.OtherField != "" {
			other, known := s.Field(f.OtherField)
			if !known {
				return nil, domain.NewSchemaError(f.Key, "other override names undeclared field %q", f.OtherField)
			}
			if other.Kind != KindText {
				return nil, domain.NewSchemaError(f.Key, "other override %q must be a text field", f.OtherField)
			}
		}
	}

	return s, nil
}

// Fields returns the field declarations in schema order.
func (s *Schema) Fields() []FieldDef { return s.fields }

// Groups returns the group declarations in schema order.
func (s *Schema) Groups() []GroupDef { return s.groups }

// OtherSentinel is the choice value that defers to a free-text override.
func (s *Schema) OtherSentinel() string { return s.otherSentinel }

// Field looks up a field declaration.
func (s *Schema) Field(key string) (FieldDef, bool) {
	i, ok := s.fieldIndex[key]
	if !ok {
		return FieldDef{}, false
	}
	return s.fields[i], true
}

// Group looks up a group declaration.
func (s *Schema) Group(name string) (GroupDef, bool) {
	i, ok := s.groupIndex[name]
	if !ok {
		return GroupDef{}, false
	}
	return s.groups[i], true
}
