package catalog

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

func testRegistry() *validate.Registry {
	return validate.NewRegistry(validate.WithClock(func() time.Time {
		return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	}))
}

func TestDefault_Loads(t *testing.T) {
	t.Parallel()

	cat, err := Default(testRegistry())
	require.NoError(t, err)

	ids := make([]string, 0, len(cat.Templates()))
	for _, tpl := range cat.Templates() {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"private_sector", "state_employee", "ministry_public_security"}, ids)

	private, ok := cat.Template("private_sector")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 9, 10, 15, 16}, private.Sequence)
	assert.Empty(t, private.FormCode)

	_, ok = cat.Layout(private.Layout)
	assert.True(t, ok)

	review, ok := cat.Navigator().Step(16)
	require.True(t, ok)
	assert.Empty(t, review.Fields)
	assert.Empty(t, review.Tables)

	assert.Equal(t, "Khác (Other – Ghi rõ)", cat.Schema().OtherSentinel())
}

func TestDefault_SkipPredicatesResolved(t *testing.T) {
	t.Parallel()

	cat, err := Default(testRegistry())
	require.NoError(t, err)

	tpl, _ := cat.Template("ministry_public_security")
	nav := cat.Navigator()

	// No flags: spouse (8), children (10), party (11) and clearance (14) are skipped.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 12, 13, 15, 16}, nav.Visible(tpl, nil))
	assert.Equal(t, 9, nav.Next(7, tpl, nil))
	assert.Equal(t, 15, nav.Next(13, tpl, nil))

	flags := wizard.Flags{wizard.FlagHasSpouse: true, wizard.FlagNeedsClearance: true}
	assert.Equal(t, 8, nav.Next(7, tpl, flags))
	assert.Equal(t, 14, nav.Next(13, tpl, flags))
}

func TestDefault_StepValidation(t *testing.T) {
	t.Parallel()

	cat, err := Default(testRegistry())
	require.NoError(t, err)

	step, ok := cat.Navigator().Step(1)
	require.True(t, ok)

	rec, err := cat.Assembler().Assemble(record.RawInput{
		Fields: map[string]any{"full_name": "nguyen van a", "dob": "2030-01-01"},
	})
	require.NoError(t, err)

	assert.Equal(t, []validate.Issue{
		{Location: "full_name", Message: "Họ tên phải viết hoa."},
		{Location: "dob", Message: "Ngày chọn nằm ngoài khoảng cho phép."},
	}, step.Validate(rec))
}

const minimalSchema = `
schema:
  fields:
    - {key: full_name, kind: text}
    - {key: dob, kind: date}
  groups:
    - name: work
      columns:
        - {key: from, kind: month}
        - {key: unit, kind: text}
`

const minimalLayout = `
layouts:
  - id: plain
    canvas: canvases/plain.yaml
    font_size: 10
    fields:
      - {key: full_name, page: 0, anchor: {x: 10, y: 10}}
`

func TestLoadFS_MergesFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a_schema.yaml": {Data: []byte(minimalSchema)},
		"b_layout.yml":  {Data: []byte(minimalLayout)},
		"c_steps.yaml": {Data: []byte(`
steps:
  - id: 1
    name: only
    fields:
      - key: full_name
        rules: [{rule: required}]
    tables:
      - group: work
        columns:
          - column: unit
            rules: [{rule: required}]
templates:
  - {id: t, sequence: [1], layout: plain}
`)},
		"README.md": {Data: []byte("ignored")},
	}

	cat, err := LoadFS(fsys, testRegistry())
	require.NoError(t, err)

	step, ok := cat.Navigator().Step(1)
	require.True(t, ok)
	require.Len(t, step.Tables, 1)
	assert.Equal(t, []string{"from", "unit"}, step.Tables[0].Columns)
	assert.Len(t, cat.Steps(), 1)
}

func TestLoadFS_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps string
	}{
		{
			name: "undeclared field",
			steps: `
steps:
  - id: 1
    fields:
      - key: nickname
        rules: [{rule: required}]
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "field without chain",
			steps: `
steps:
  - id: 1
    fields:
      - key: full_name
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "unknown rule",
			steps: `
steps:
  - id: 1
    fields:
      - key: full_name
        rules: [{rule: shout}]
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "unknown pattern",
			steps: `
steps:
  - id: 1
    fields:
      - key: full_name
        rules: [{rule: pattern, pattern: nope}]
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "cross field reference to undeclared key",
			steps: `
steps:
  - id: 1
    fields:
      - key: full_name
        rules: [{rule: required_with, field: ghost}]
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "undeclared table column",
			steps: `
steps:
  - id: 1
    tables:
      - group: work
        columns:
          - column: salary
            rules: [{rule: numeric}]
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "unknown skip predicate",
			steps: `
steps:
  - id: 1
    skip_when: on_tuesdays
templates:
  - {id: t, sequence: [1], layout: plain}
`,
		},
		{
			name: "reserved step id",
			steps: `
steps:
  - id: 0
templates:
  - {id: t, sequence: [0], layout: plain}
`,
		},
		{
			name: "template names undefined step",
			steps: `
steps:
  - id: 1
templates:
  - {id: t, sequence: [1, 2], layout: plain}
`,
		},
		{
			name: "template names undeclared layout",
			steps: `
steps:
  - id: 1
templates:
  - {id: t, sequence: [1], layout: fancy}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{
				"schema.yaml": {Data: []byte(minimalSchema)},
				"layout.yaml": {Data: []byte(minimalLayout)},
				"steps.yaml":  {Data: []byte(tt.steps)},
			}

			_, err := LoadFS(fsys, testRegistry())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrSchema), "error %v should wrap ErrSchema", err)
		})
	}
}

func TestLoadFS_LayoutKeyNotInSchema(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"schema.yaml": {Data: []byte(minimalSchema)},
		"layout.yaml": {Data: []byte(`
layouts:
  - id: plain
    canvas: c.yaml
    font_size: 10
    fields:
      - {key: dob, page: 0, anchor: {x: 1, y: 1}, date_offsets: [0, 10]}
`)},
	}

	_, err := LoadFS(fsys, testRegistry())
	var se *domain.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "layouts.plain.fields.dob", se.Subject)
}

func TestLoadFS_InvalidYAML(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"broken.yaml": {Data: []byte("steps: [")}}

	_, err := LoadFS(fsys, testRegistry())
	assert.ErrorIs(t, err, domain.ErrSchema)
}
