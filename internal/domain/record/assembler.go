package record

import (
	"encoding/json"
	"fmt"
	"html"
	"maps"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

// RawInput is a collaborator submission: scalar values by field key plus
// repeating groups as ordered lists of column/cell maps.
type RawInput struct {
	Fields map[string]any              `json:"fields"`
	Groups map[string][]map[string]any `json:"groups"`
}

// Assembler turns raw input into a canonical Record under a Schema.
// It is pure: inputs are never mutated and outputs never alias them.
type Assembler struct {
	schema *Schema
	policy *bluemonday.Policy
}

// NewAssembler returns an Assembler bound to schema.
func NewAssembler(schema *Schema) *Assembler {
	return &Assembler{
		schema: schema,
		policy: bluemonday.StrictPolicy(),
	}
}

// Schema returns the schema the assembler enforces.
func (a *Assembler) Schema() *Schema { return a.schema }

// Assemble builds a fresh record from raw.
func (a *Assembler) Assemble(raw RawInput) (Record, error) {
	return a.Merge(New(), raw)
}

// Merge applies raw on top of a copy of base. Keys present in raw replace
// base values (a nil value clears the field); groups present in raw replace
// the whole group. Defaults and derived values are then recomputed.
func (a *Assembler) Merge(base Record, raw RawInput) (Record, error) {
	out := base.Clone()
	a.dropStaleCopies(out, raw)

	for key, v := range raw.Fields {
		def, ok := a.schema.Field(key)
		if !ok {
			return Record{}, domain.NewSchemaError(key, "no declared field")
		}
		val := a.normalize(def.Kind, v)
		if isBlank(val) {
			delete(out.Fields, key)
			continue
		}
		out.Fields[key] = val
	}

	for name, rawRows := range raw.Groups {
		group, ok := a.schema.Group(name)
		if !ok {
			return Record{}, domain.NewSchemaError(name, "no declared repeating group")
		}
		rows, err := a.assembleRows(group, rawRows)
		if err != nil {
			return Record{}, err
		}
		out.Groups[name] = rows
	}

	a.applyDefaults(out)
	a.resolveOther(out)

	return out, nil
}

func (a *Assembler) assembleRows(group GroupDef, rawRows []map[string]any) ([]Row, error) {
	rows := make([]Row, 0, len(rawRows))
	columns := group.ColumnKeys()

	for i, rawRow := range rawRows {
		row := make(Row, len(group.Columns))
		for col, v := range rawRow {
			def, ok := group.Column(col)
			if !ok {
				return nil, domain.NewSchemaError(
					fmt.Sprintf("%s[%d].%s", group.Name, i+1, col), "no declared column")
			}
			row[col] = Stringify(a.normalize(def.Kind, v))
		}
		if !row.Blank(columns) {
			for _, c := range group.Columns {
				if c.Default != "" && strings.TrimSpace(row[c.Key]) == "" {
					row[c.Key] = c.Default
				}
			}
			a.resolveOtherCells(group, row)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// applyDefaults fills literal defaults first, then "from:" copies, so a copy
// may read a literal default.
func (a *Assembler) applyDefaults(r Record) {
	for _, f := range a.schema.Fields() {
		if f.Default == "" || !isBlank(r.Fields[f.Key]) {
			continue
		}
		if _, isCopy := f.CopyFrom(); isCopy {
			continue
		}
		r.Fields[f.Key] = f.Default
	}
	for _, f := range a.schema.Fields() {
		src, isCopy := f.CopyFrom()
		if !isCopy || !isBlank(r.Fields[f.Key]) {
			continue
		}
		if v, ok := r.Fields[src]; ok && !isBlank(v) {
			r.Fields[f.Key] = v
		}
	}
}

func (a *Assembler) resolveOther(r Record) {
	sentinel := a.schema.OtherSentinel()
	if sentinel == "" {
		return
	}
	for _, f := range a.schema.Fields() {
		if f.OtherField == "" || r.Text(f.Key) != sentinel {
			continue
		}
		if override := strings.TrimSpace(r.Text(f.OtherField)); override != "" {
			r.Fields[f.Key] = override
		}
	}
}

// resolveOtherCells is the row form of resolveOther.
func (a *Assembler) resolveOtherCells(group GroupDef, row Row) {
	sentinel := a.schema.OtherSentinel()
	if sentinel == "" {
		return
	}
	for _, c := range group.Columns {
		if c.OtherColumn == "" || row[c.Key] != sentinel {
			continue
		}
		if override := strings.TrimSpace(row[c.OtherColumn]); override != "" {
			row[c.Key] = override
		}
	}
}

// dropStaleCopies clears a "from:" copy when raw changes its source and
// the stored value still equals the old source, so the copy is derived
// again from the new value. A value the user typed differently stays.
func (a *Assembler) dropStaleCopies(out Record, raw RawInput) {
	for _, f := range a.schema.Fields() {
		src, isCopy := f.CopyFrom()
		if !isCopy {
			continue
		}
		if _, changing := raw.Fields[src]; !changing {
			continue
		}
		if _, explicit := raw.Fields[f.Key]; explicit {
			continue
		}
		old, had := out.Fields[f.Key]
		if had && Stringify(old) == Stringify(out.Fields[src]) {
			delete(out.Fields, f.Key)
		}
	}
}

// normalize coerces a raw JSON-ish value into the record's value space.
func (a *Assembler) normalize(kind Kind, v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := a.cleanText(t)
		if kind == KindNumber {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				return n
			}
		}
		return s
	case float64:
		if kind == KindNumber {
			return t
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return a.normalize(kind, float64(t))
	case int64:
		return a.normalize(kind, float64(t))
	case json.Number:
		return a.normalize(kind, t.String())
	case bool:
		return strconv.FormatBool(t)
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if c := a.cleanText(s); c != "" {
				out = append(out, c)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if c := Stringify(a.normalize(KindText, item)); c != "" {
				out = append(out, c)
			}
		}
		return out
	default:
		return a.cleanText(fmt.Sprint(t))
	}
}

// cleanText strips markup, restores entities the policy escaped, and
// NFC-normalizes so composed and decomposed Vietnamese input compare equal.
func (a *Assembler) cleanText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<>&") {
		s = html.UnescapeString(a.policy.Sanitize(s))
	}
	return strings.TrimSpace(norm.NFC.String(s))
}

// isBlank reports absent, whitespace-only and empty-collection values.
// A zero number is not blank.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

// CloneRaw deep-copies raw input so callers can hand it to goroutines.
func CloneRaw(raw RawInput) RawInput {
	out := RawInput{
		Fields: maps.Clone(raw.Fields),
		Groups: make(map[string][]map[string]any, len(raw.Groups)),
	}
	for name, rows := range raw.Groups {
		cp := make([]map[string]any, len(rows))
		for i, row := range rows {
			cp[i] = maps.Clone(row)
		}
		out.Groups[name] = cp
	}
	return out
}
