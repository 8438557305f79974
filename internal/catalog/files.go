package catalog

import (
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
)

// documentFile is one YAML file of the catalog. Sections may be split
// across files; LoadFS merges them.
type documentFile struct {
	OtherSentinel string              `yaml:"other_sentinel"`
	Patterns      map[string]string   `yaml:"patterns"`
	Schema        schemaFile          `yaml:"schema"`
	Steps         []stepFile          `yaml:"steps"`
	Templates     []templateFile      `yaml:"templates"`
	Layouts       []layout.Descriptor `yaml:"layouts"`
}

type schemaFile struct {
	Fields []fieldFile `yaml:"fields"`
	Groups []groupFile `yaml:"groups"`
}

type fieldFile struct {
	Key        string   `yaml:"key"`
	Kind       string   `yaml:"kind"`
	Label      string   `yaml:"label"`
	Default    string   `yaml:"default"`
	Options    []string `yaml:"options"`
	OtherField string   `yaml:"other_field"`
}

type groupFile struct {
	Name    string       `yaml:"name"`
	Label   string       `yaml:"label"`
	Columns []columnFile `yaml:"columns"`
}

type columnFile struct {
	Key         string   `yaml:"key"`
	Kind        string   `yaml:"kind"`
	Label       string   `yaml:"label"`
	Default     string   `yaml:"default"`
	Options     []string `yaml:"options"`
	OtherColumn string   `yaml:"other_column"`
}

type stepFile struct {
	ID       int         `yaml:"id"`
	Name     string      `yaml:"name"`
	Title    string      `yaml:"title"`
	Subtitle string      `yaml:"subtitle"`
	SkipWhen string      `yaml:"skip_when"`
	Fields   []ruleFile  `yaml:"fields"`
	Tables   []tableFile `yaml:"tables"`
}

type ruleFile struct {
	Key   string              `yaml:"key"`
	Rules []validate.RuleSpec `yaml:"rules"`
}

type tableFile struct {
	Group        string       `yaml:"group"`
	Mandatory    bool         `yaml:"mandatory"`
	EmptyMessage string       `yaml:"empty_message"`
	Columns      []columnRule `yaml:"columns"`
}

type columnRule struct {
	Column string              `yaml:"column"`
	Rules  []validate.RuleSpec `yaml:"rules"`
}

type templateFile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	FormCode    string `yaml:"form_code"`
	Sequence    []int  `yaml:"sequence"`
	Layout      string `yaml:"layout"`
}
