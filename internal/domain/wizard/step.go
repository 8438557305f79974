package wizard

import (
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
)

// StartStep is the implicit step before the first template entry.
const StartStep = 0

// StepDefinition declares one wizard step: which fields and tables it
// collects, how they are validated, and when it is skipped.
type StepDefinition struct {
	ID       int
	Name     string
	Title    string
	Subtitle string
	Fields   []validate.FieldRule
	Tables   []validate.TableRule
	SkipWhen string
	Skip     SkipPredicate
}

// Skipped reports whether the step is bypassed under flags.
func (s StepDefinition) Skipped(flags Flags) bool {
	return s.Skip != nil && s.Skip(flags)
}

// Validate checks the step's fields and tables against rec.
func (s StepDefinition) Validate(rec record.Record) []validate.Issue {
	return validate.Validate(rec, s.Fields, s.Tables)
}

// FieldKeys returns the keys of the fields the step collects.
func (s StepDefinition) FieldKeys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Template is a named ordered subsequence of steps plus its layout.
type Template struct {
	ID          string
	Name        string
	Description string
	FormCode    string
	Sequence    []int
	Layout      string
}

// First returns the first sequence entry or StartStep when empty.
func (t Template) First() int {
	if len(t.Sequence) == 0 {
		return StartStep
	}
	return t.Sequence[0]
}

// Last returns the final sequence entry or StartStep when empty.
func (t Template) Last() int {
	if len(t.Sequence) == 0 {
		return StartStep
	}
	return t.Sequence[len(t.Sequence)-1]
}

func (t Template) indexOf(id int) int {
	for i, s := range t.Sequence {
		if s == id {
			return i
		}
	}
	return -1
}
