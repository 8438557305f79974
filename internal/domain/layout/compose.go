package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
)

const (
	isoLayout  = "2006-01-02"
	rangeJoint = " - "
)

// Placement is one text write on the canvas.
type Placement struct {
	Source string  `json:"source"`
	Page   int     `json:"page"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Text   string  `json:"text"`
}

// OverflowWarning reports content that was not written. Group warnings
// count dropped rows; Field warnings name a scalar field whose page is
// missing from the canvas. Exactly one of Group and Field is set.
type OverflowWarning struct {
	Group   string `json:"group,omitempty"`
	Field   string `json:"field,omitempty"`
	Page    int    `json:"page"`
	Dropped int    `json:"dropped"`
	Reason  string `json:"reason"`
}

// Subject is the group or field the warning is about.
func (w OverflowWarning) Subject() string {
	if w.Field != "" {
		return w.Field
	}
	return w.Group
}

func (w OverflowWarning) String() string {
	if w.Field != "" {
		return fmt.Sprintf("%s: field not written on page %d (%s)", w.Field, w.Page, w.Reason)
	}
	return fmt.Sprintf("%s: %d row(s) dropped on page %d (%s)", w.Group, w.Dropped, w.Page, w.Reason)
}

// Composition is the ordered list of writes plus any non-fatal warnings.
type Composition struct {
	Placements []Placement
	Warnings   []OverflowWarning
}

// Compose places rec onto a canvas of pages pages. Scalar fields follow
// schema order, then groups follow descriptor order, so output order is
// stable. Row i of a group always lands on slot i; a fully blank row
// writes nothing but keeps its slot.
func Compose(rec record.Record, d Descriptor, schema *record.Schema, pages int) Composition {
	var c Composition

	placed := make(map[string]FieldPlacement, len(d.Fields))
	for _, f := range d.Fields {
		placed[f.Key] = f
	}

	for _, def := range schema.Fields() {
		f, ok := placed[def.Key]
		if !ok {
			continue
		}
		if f.Page >= pages {
			c.Warnings = append(c.Warnings, OverflowWarning{
				Field: f.Key, Page: f.Page, Dropped: 1, Reason: "page not in canvas",
			})
			continue
		}
		size := sizeOr(f.Size, d.FontSize)

		if f.Composite() {
			for i, part := range splitDate(rec.Text(f.Key)) {
				c.Placements = append(c.Placements, Placement{
					Source: fmt.Sprintf("%s#%d", f.Key, i),
					Page:   f.Page,
					X:      f.Anchor.X + f.DateOffsets[i],
					Y:      f.Anchor.Y,
					Size:   size,
					Text:   part,
				})
			}
			continue
		}

		text := rec.Text(f.Key)
		if text == "" {
			continue
		}
		c.Placements = append(c.Placements, Placement{
			Source: f.Key, Page: f.Page, X: f.Anchor.X, Y: f.Anchor.Y, Size: size, Text: text,
		})
	}

	for _, g := range d.Groups {
		composeGroup(&c, rec.Groups[g.Group], g, sizeOr(g.Size, d.FontSize), pages)
	}

	return c
}

func composeGroup(c *Composition, rows []record.Row, g GroupPlacement, size float64, pages int) {
	keys := make([]string, 0, len(g.Columns)*2)
	for _, col := range g.Columns {
		keys = append(keys, col.Key)
		if col.RangeTo != "" {
			keys = append(keys, col.RangeTo)
		}
	}

	// Trailing blank rows are left over from the input grid and never count
	// against the row bound.
	last := len(rows) - 1
	for last >= 0 && rows[last].Blank(keys) {
		last--
	}
	rows = rows[:last+1]
	if len(rows) == 0 {
		return
	}

	if g.Page >= pages {
		c.Warnings = append(c.Warnings, OverflowWarning{
			Group: g.Group, Page: g.Page, Dropped: countFilled(rows, keys), Reason: "page not in canvas",
		})
		return
	}

	for i, row := range rows {
		if i >= g.MaxRows {
			c.Warnings = append(c.Warnings, OverflowWarning{
				Group:   g.Group,
				Page:    g.Page,
				Dropped: countFilled(rows[i:], keys),
				Reason:  fmt.Sprintf("exceeds %d rows", g.MaxRows),
			})
			return
		}
		if row.Blank(keys) {
			continue
		}
		y := g.Base.Y + float64(i)*g.Stride
		for _, col := range g.Columns {
			text := cellText(row, col)
			if text == "" {
				continue
			}
			c.Placements = append(c.Placements, Placement{
				Source: fmt.Sprintf("%s[%d].%s", g.Group, i+1, col.Key),
				Page:   g.Page,
				X:      g.Base.X + col.Offset,
				Y:      y,
				Size:   size,
				Text:   text,
			})
		}
	}
}

func countFilled(rows []record.Row, keys []string) int {
	n := 0
	for _, row := range rows {
		if !row.Blank(keys) {
			n++
		}
	}
	return n
}

// cellText renders a column, joining range pairs only when one side has
// content so a bare separator is never written.
func cellText(row record.Row, col Column) string {
	from := strings.TrimSpace(row[col.Key])
	if col.RangeTo == "" {
		return from
	}
	to := strings.TrimSpace(row[col.RangeTo])
	if from == "" && to == "" {
		return ""
	}
	return strings.TrimSpace(from + rangeJoint + to)
}

// splitDate returns zero-padded day, month and year. Absent or malformed
// dates give three empty parts so every composite still writes three times.
func splitDate(v string) [dateParts]string {
	t, err := time.Parse(isoLayout, strings.TrimSpace(v))
	if err != nil {
		return [dateParts]string{}
	}
	return [dateParts]string{
		fmt.Sprintf("%02d", t.Day()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%04d", t.Year()),
	}
}

func sizeOr(size, fallback float64) float64 {
	if size > 0 {
		return size
	}
	return fallback
}
