// Package catalog loads the declarative dossier configuration (schema,
// patterns, steps, templates and layouts) from YAML and checks it as a whole
// before any session runs. Every key a step, table or layout names must be
// declared in the schema; violations are reported together as SchemaErrors.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

// Catalog is the immutable, validated configuration shared by all sessions.
type Catalog struct {
	schema    *record.Schema
	assembler *record.Assembler
	navigator *wizard.Navigator
	steps     []wizard.StepDefinition
	templates []wizard.Template
	layouts   map[string]layout.Descriptor
}

// Schema returns the closed record schema.
func (c *Catalog) Schema() *record.Schema { return c.schema }

// Assembler returns the record assembler bound to the schema.
func (c *Catalog) Assembler() *record.Assembler { return c.assembler }

// Navigator returns the step navigator over all defined steps.
func (c *Catalog) Navigator() *wizard.Navigator { return c.navigator }

// Steps returns step definitions in declaration order.
func (c *Catalog) Steps() []wizard.StepDefinition { return c.steps }

// Templates returns templates in declaration order.
func (c *Catalog) Templates() []wizard.Template { return c.templates }

// Template looks up a template by id.
func (c *Catalog) Template(id string) (wizard.Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return wizard.Template{}, false
}

// Layout looks up a layout descriptor by id.
func (c *Catalog) Layout(id string) (layout.Descriptor, bool) {
	d, ok := c.layouts[id]
	return d, ok
}

// Default loads the embedded catalog.
func Default(reg *validate.Registry) (*Catalog, error) {
	return LoadFS(EmbeddedFS(), reg)
}

// LoadFS reads every .yaml/.yml file in fsys, merges their sections and
// builds the catalog. Validator chains are compiled through reg.
func LoadFS(fsys fs.FS, reg *validate.Registry) (*Catalog, error) {
	var merged documentFile

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		var doc documentFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return domain.NewSchemaError(path, "invalid YAML: %v", err)
		}
		return merge(&merged, doc, path)
	})
	if err != nil {
		return nil, err
	}

	return build(merged, reg)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func merge(dst *documentFile, src documentFile, path string) error {
	if src.OtherSentinel != "" {
		if dst.OtherSentinel != "" && dst.OtherSentinel != src.OtherSentinel {
			return domain.NewSchemaError(path, "other_sentinel redefined")
		}
		dst.OtherSentinel = src.OtherSentinel
	}
	for name, expr := range src.Patterns {
		if dst.Patterns == nil {
			dst.Patterns = make(map[string]string)
		}
		if _, dup := dst.Patterns[name]; dup {
			return domain.NewSchemaError(path, "pattern %q redefined", name)
		}
		dst.Patterns[name] = expr
	}
	dst.Schema.Fields = append(dst.Schema.Fields, src.Schema.Fields...)
	dst.Schema.Groups = append(dst.Schema.Groups, src.Schema.Groups...)
	dst.Steps = append(dst.Steps, src.Steps...)
	dst.Templates = append(dst.Templates, src.Templates...)
	dst.Layouts = append(dst.Layouts, src.Layouts...)
	return nil
}

func build(doc documentFile, reg *validate.Registry) (*Catalog, error) {
	for name, expr := range doc.Patterns {
		if err := reg.RegisterPattern(name, expr); err != nil {
			return nil, err
		}
	}

	schema, err := buildSchema(doc)
	if err != nil {
		return nil, err
	}

	var errs []error

	steps := make([]wizard.StepDefinition, 0, len(doc.Steps))
	for _, sf := range doc.Steps {
		step, err := buildStep(sf, schema, reg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		steps = append(steps, step)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	nav, err := wizard.NewNavigator(steps)
	if err != nil {
		return nil, err
	}

	layouts := make(map[string]layout.Descriptor, len(doc.Layouts))
	for _, d := range doc.Layouts {
		if _, dup := layouts[d.ID]; dup {
			errs = append(errs, domain.NewSchemaError("layouts."+d.ID, "layout declared twice"))
			continue
		}
		if err := d.Check(schema); err != nil {
			errs = append(errs, err)
			continue
		}
		layouts[d.ID] = d
	}

	templates := make([]wizard.Template, 0, len(doc.Templates))
	seen := make(map[string]bool, len(doc.Templates))
	for _, tf := range doc.Templates {
		t := wizard.Template{
			ID:          tf.ID,
			Name:        tf.Name,
			Description: tf.Description,
			FormCode:    tf.FormCode,
			Sequence:    tf.Sequence,
			Layout:      tf.Layout,
		}
		if seen[t.ID] {
			errs = append(errs, domain.NewSchemaError("templates."+t.ID, "template declared twice"))
			continue
		}
		seen[t.ID] = true
		if err := nav.CheckTemplate(t); err != nil {
			errs = append(errs, err)
		}
		if _, ok := layouts[t.Layout]; !ok {
			errs = append(errs, domain.NewSchemaError("templates."+t.ID, "layout %q is not declared", t.Layout))
		}
		templates = append(templates, t)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Catalog{
		schema:    schema,
		assembler: record.NewAssembler(schema),
		navigator: nav,
		steps:     steps,
		templates: templates,
		layouts:   layouts,
	}, nil
}

func buildSchema(doc documentFile) (*record.Schema, error) {
	fields := make([]record.FieldDef, len(doc.Schema.Fields))
	for i, f := range doc.Schema.Fields {
		fields[i] = record.FieldDef{
			Key:        f.Key,
			Kind:       record.Kind(f.Kind),
			Label:      f.Label,
			Default:    f.Default,
			Options:    f.Options,
			OtherField: f.OtherField,
		}
	}

	groups := make([]record.GroupDef, len(doc.Schema.Groups))
	for i, g := range doc.Schema.Groups {
		cols := make([]record.ColumnDef, len(g.Columns))
		for j, c := range g.Columns {
			cols[j] = record.ColumnDef{
				Key:         c.Key,
				Kind:        record.Kind(c.Kind),
				Label:       c.Label,
				Default:     c.Default,
				Options:     c.Options,
				OtherColumn: c.OtherColumn,
			}
		}
		groups[i] = record.GroupDef{Name: g.Name, Label: g.Label, Columns: cols}
	}

	return record.NewSchema(fields, groups, doc.OtherSentinel)
}

func buildStep(sf stepFile, schema *record.Schema, reg *validate.Registry) (wizard.StepDefinition, error) {
	subject := fmt.Sprintf("steps.%d", sf.ID)
	step := wizard.StepDefinition{
		ID:       sf.ID,
		Name:     sf.Name,
		Title:    sf.Title,
		Subtitle: sf.Subtitle,
		SkipWhen: sf.SkipWhen,
	}

	if sf.SkipWhen != "" {
		pred, ok := wizard.LookupPredicate(sf.SkipWhen)
		if !ok {
			return step, domain.NewSchemaError(subject, "unknown skip predicate %q", sf.SkipWhen)
		}
		step.Skip = pred
	}

	for _, rf := range sf.Fields {
		at := subject + "." + rf.Key
		if _, ok := schema.Field(rf.Key); !ok {
			return step, domain.NewSchemaError(at, "field is not declared in the schema")
		}
		if len(rf.Rules) == 0 {
			return step, domain.NewSchemaError(at, "field has no validator chain")
		}
		for _, ref := range validate.CrossFieldRefs(rf.Rules) {
			if _, ok := schema.Field(ref); !ok {
				return step, domain.NewSchemaError(at, "rule reads undeclared field %q", ref)
			}
		}
		chain, err := reg.Build(at, rf.Rules)
		if err != nil {
			return step, err
		}
		step.Fields = append(step.Fields, validate.FieldRule{Key: rf.Key, Chain: chain})
	}

	for _, tf := range sf.Tables {
		at := subject + "." + tf.Group
		group, ok := schema.Group(tf.Group)
		if !ok {
			return step, domain.NewSchemaError(at, "group is not declared in the schema")
		}
		if len(tf.Columns) == 0 {
			return step, domain.NewSchemaError(at, "table has no column validators")
		}
		table := validate.TableRule{
			Group:        tf.Group,
			Mandatory:    tf.Mandatory,
			EmptyMessage: tf.EmptyMessage,
			Columns:      group.ColumnKeys(),
		}
		for _, cr := range tf.Columns {
			colAt := at + "." + cr.Column
			if _, ok := group.Column(cr.Column); !ok {
				return step, domain.NewSchemaError(colAt, "column is not declared in the schema")
			}
			for _, ref := range validate.CrossFieldRefs(cr.Rules) {
				if _, ok := group.Column(ref); !ok {
					return step, domain.NewSchemaError(colAt, "rule reads undeclared column %q", ref)
				}
			}
			chain, err := reg.Build(colAt, cr.Rules)
			if err != nil {
				return step, err
			}
			table.Rules = append(table.Rules, validate.ColumnRule{Column: cr.Column, Chain: chain})
		}
		step.Tables = append(step.Tables, table)
	}

	return step, nil
}
