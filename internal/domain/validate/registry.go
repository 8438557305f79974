package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

// Rule identifiers accepted in RuleSpec.Rule.
const (
	RuleRequired       = "required"
	RuleRequiredChoice = "required_choice"
	RulePattern        = "pattern"
	RuleMaxLength      = "max_length"
	RuleDateRange      = "date_range"
	RuleDateAfter      = "date_after"
	RuleYearRange      = "year_range"
	RuleNumeric        = "numeric"
	RuleOneOf          = "one_of"
	RuleRequiredWith   = "required_with"
)

// boundToday in RuleSpec.Max means "the clock's current date or year".
const boundToday = "today"

// Built-in pattern names.
const (
	PatternFullName = "full_name"
	PatternPhone    = "phone"
	PatternEmail    = "email"
	PatternIDNumber = "id_number"
	PatternYear     = "year"
	PatternMonth    = "month"
	PatternNumeric  = "numeric"
)

var builtinPatterns = map[string]string{
	PatternFullName: `^[A-ZÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴĐÈÉẸẺẼÊỀẾỆỂỄÌÍỊỈĨÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠÙÚỤỦŨƯỪỨỰỬỮỲÝỴỶỸ ]+$`,
	PatternPhone:    `^0\d{9}$`,
	PatternEmail:    `^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`,
	PatternIDNumber: `^(?:\d{9}|\d{12})$`,
	PatternYear:     `^\d{4}$`,
	PatternMonth:    `^(0[1-9]|1[0-2])/\d{4}$`,
	PatternNumeric:  `^\d+$`,
}

// RuleSpec is the declarative form of one validator as it appears in the
// catalog. Only the parameters a rule needs are read.
type RuleSpec struct {
	Rule          string   `yaml:"rule"`
	Message       string   `yaml:"message"`
	FormatMessage string   `yaml:"format_message"`
	Pattern       string   `yaml:"pattern"`
	Field         string   `yaml:"field"`
	Limit         int      `yaml:"limit"`
	Min           string   `yaml:"min"`
	Max           string   `yaml:"max"`
	Options       []string `yaml:"options"`
}

// Registry turns RuleSpecs into Chains. It owns the named patterns and the
// clock used for "today" bounds; it holds no per-session state.
type Registry struct {
	patterns map[string]*regexp.Regexp
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used for "today" bounds. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithPattern registers or replaces a named pattern.
func WithPattern(name string, re *regexp.Regexp) Option {
	return func(r *Registry) {
		r.patterns[name] = re
	}
}

// NewRegistry returns a Registry preloaded with the built-in patterns.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		patterns: make(map[string]*regexp.Regexp, len(builtinPatterns)),
		now:      time.Now,
	}
	for name, expr := range builtinPatterns {
		r.patterns[name] = regexp.MustCompile(expr)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPattern compiles and registers a named pattern.
func (r *Registry) RegisterPattern(name, expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return domain.NewSchemaError("patterns."+name, "invalid expression: %v", err)
	}
	r.patterns[name] = re
	return nil
}

// Build compiles specs into a Chain. subject names the field or column in
// errors. Unknown rules, patterns and malformed parameters are SchemaErrors.
func (r *Registry) Build(subject string, specs []RuleSpec) (Chain, error) {
	chain := make(Chain, 0, len(specs))
	for i, spec := range specs {
		v, err := r.build(spec)
		if err != nil {
			return nil, domain.NewSchemaError(fmt.Sprintf("%s.rules[%d]", subject, i), "%v", err)
		}
		chain = append(chain, v)
	}
	return chain, nil
}

// CrossFieldRefs returns the sibling keys the specs read through the context.
func CrossFieldRefs(specs []RuleSpec) []string {
	var refs []string
	for _, s := range specs {
		switch s.Rule {
		case RuleDateAfter, RuleRequiredWith:
			refs = append(refs, s.Field)
		}
	}
	return refs
}

func (r *Registry) build(s RuleSpec) (Validator, error) {
	msg := func(def string) string {
		if s.Message != "" {
			return s.Message
		}
		return def
	}

	switch s.Rule {
	case RuleRequired:
		return Required(msg(MsgRequired)), nil
	case RuleRequiredChoice:
		return RequiredChoice(msg(MsgChoice)), nil
	case RulePattern:
		re, ok := r.patterns[s.Pattern]
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q", s.Pattern)
		}
		return Pattern(re, msg(MsgPattern)), nil
	case RuleMaxLength:
		if s.Limit <= 0 {
			return nil, fmt.Errorf("max_length needs a positive limit, got %d", s.Limit)
		}
		return MaxLength(s.Limit, msg(MsgMaxLength)), nil
	case RuleDateRange:
		bounds, err := r.dateBounds(s.Min, s.Max)
		if err != nil {
			return nil, err
		}
		return DateRange(bounds, msg(MsgDateRange), formatMsg(s.FormatMessage, MsgDateFormat)), nil
	case RuleDateAfter:
		if s.Field == "" {
			return nil, errors.New("date_after needs a field")
		}
		return DateAfter(s.Field, msg(MsgDateAfter)), nil
	case RuleYearRange:
		lo, hi, err := r.yearBounds(s.Min, s.Max)
		if err != nil {
			return nil, err
		}
		return YearRange(lo, hi, msg(MsgYearRange), formatMsg(s.FormatMessage, MsgYearNumeric)), nil
	case RuleNumeric:
		return Numeric(msg(MsgNumeric)), nil
	case RuleOneOf:
		if len(s.Options) == 0 {
			return nil, errors.New("one_of needs options")
		}
		return OneOf(s.Options, msg(MsgOneOf)), nil
	case RuleRequiredWith:
		if s.Field == "" {
			return nil, errors.New("required_with needs a field")
		}
		return RequiredWith(s.Field, msg(MsgRequiredWith)), nil
	default:
		return nil, fmt.Errorf("unknown rule %q", s.Rule)
	}
}

func formatMsg(custom, def string) string {
	if custom != "" {
		return custom
	}
	return def
}

// dateBounds parses ISO bounds. Min defaults to 1900-01-01 and Max to today.
func (r *Registry) dateBounds(minRaw, maxRaw string) (func() (time.Time, time.Time), error) {
	lo := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	if minRaw != "" {
		t, err := time.Parse(isoLayout, minRaw)
		if err != nil {
			return nil, fmt.Errorf("date_range min %q: %w", minRaw, err)
		}
		lo = t
	}

	if maxRaw == "" || maxRaw == boundToday {
		now := r.now
		return func() (time.Time, time.Time) {
			y, m, d := now().Date()
			return lo, time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}, nil
	}

	hi, err := time.Parse(isoLayout, maxRaw)
	if err != nil {
		return nil, fmt.Errorf("date_range max %q: %w", maxRaw, err)
	}
	return func() (time.Time, time.Time) { return lo, hi }, nil
}

// yearBounds parses integer bounds. Min defaults to 1900 and Max to the
// clock's current year.
func (r *Registry) yearBounds(minRaw, maxRaw string) (int, func() int, error) {
	lo := 1900
	if minRaw != "" {
		v, err := strconv.Atoi(strings.TrimSpace(minRaw))
		if err != nil {
			return 0, nil, fmt.Errorf("year_range min %q: %w", minRaw, err)
		}
		lo = v
	}

	if maxRaw == "" || maxRaw == boundToday {
		now := r.now
		return lo, func() int { return now().Year() }, nil
	}

	hi, err := strconv.Atoi(strings.TrimSpace(maxRaw))
	if err != nil {
		return 0, nil, fmt.Errorf("year_range max %q: %w", maxRaw, err)
	}
	return lo, func() int { return hi }, nil
}
