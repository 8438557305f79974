package record

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Row is one entry of a repeating group, keyed by column.
type Row map[string]string

// Lookup implements validate.Context so column chains can read siblings.
func (r Row) Lookup(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Blank reports whether every listed column is empty or whitespace.
func (r Row) Blank(columns []string) bool {
	for _, c := range columns {
		if strings.TrimSpace(r[c]) != "" {
			return false
		}
	}
	return true
}

// Record is the canonical dossier snapshot owned by one wizard session.
// Field values are strings, []string for multi-value choices, or float64
// for number fields. Group rows keep their input order.
type Record struct {
	Fields map[string]any   `json:"fields"`
	Groups map[string][]Row `json:"groups"`
}

// New returns an empty record ready for assembly.
func New() Record {
	return Record{
		Fields: make(map[string]any),
		Groups: make(map[string][]Row),
	}
}

// Lookup implements validate.Context for cross-field rules.
func (r Record) Lookup(key string) (any, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Text returns the field rendered as a single string. Absent fields are "".
func (r Record) Text(key string) string {
	return Stringify(r.Fields[key])
}

// Clone returns a deep copy that shares nothing with r.
func (r Record) Clone() Record {
	out := New()
	for k, v := range r.Fields {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}
		out.Fields[k] = v
	}
	for name, rows := range r.Groups {
		cp := make([]Row, len(rows))
		for i, row := range rows {
			cp[i] = maps.Clone(row)
		}
		out.Groups[name] = cp
	}
	return out
}

// Stringify renders a field value for display or placement.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []string:
		return strings.Join(t, ", ")
	default:
		return ""
	}
}

// UnmarshalJSON restores multi-value choices as []string after a storage
// round trip.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Fields map[string]any   `json:"fields"`
		Groups map[string][]Row `json:"groups"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = New()
	for k, v := range raw.Fields {
		if list, ok := v.([]any); ok {
			strs := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					strs = append(strs, s)
				}
			}
			v = strs
		}
		r.Fields[k] = v
	}
	for name, rows := range raw.Groups {
		r.Groups[name] = rows
	}
	return nil
}
