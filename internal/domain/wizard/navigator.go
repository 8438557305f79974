// Package wizard sequences dossier steps. The Navigator is a pure state
// machine over step ids: it reads a template's sequence and the session's
// flags and never touches storage.
package wizard

import (
	"fmt"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

// Navigator computes step transitions for any template over a fixed set of
// step definitions.
type Navigator struct {
	steps map[int]StepDefinition
}

// NewNavigator indexes steps. Ids must be unique and non-zero.
func NewNavigator(steps []StepDefinition) (*Navigator, error) {
	n := &Navigator{steps: make(map[int]StepDefinition, len(steps))}
	for _, s := range steps {
		if s.ID == StartStep {
			return nil, domain.NewSchemaError(fmt.Sprintf("steps.%d", s.ID), "id 0 is reserved for the start state")
		}
		if _, dup := n.steps[s.ID]; dup {
			return nil, domain.NewSchemaError(fmt.Sprintf("steps.%d", s.ID), "duplicate step id")
		}
		n.steps[s.ID] = s
	}
	return n, nil
}

// Step returns the definition for id.
func (n *Navigator) Step(id int) (StepDefinition, bool) {
	s, ok := n.steps[id]
	return s, ok
}

// CheckTemplate verifies that every sequence entry names a defined step
// exactly once.
func (n *Navigator) CheckTemplate(t Template) error {
	if len(t.Sequence) == 0 {
		return domain.NewSchemaError("templates."+t.ID, "empty step sequence")
	}
	seen := make(map[int]bool, len(t.Sequence))
	for _, id := range t.Sequence {
		if _, ok := n.steps[id]; !ok {
			return domain.NewSchemaError("templates."+t.ID, "step %d is not defined", id)
		}
		if seen[id] {
			return domain.NewSchemaError("templates."+t.ID, "step %d appears twice", id)
		}
		seen[id] = true
	}
	return nil
}

func (n *Navigator) skipped(id int, flags Flags) bool {
	s, ok := n.steps[id]
	return ok && s.Skipped(flags)
}

// Next returns the step after current. Unknown ids recover to StartStep;
// the last entry is terminal and returns itself. Skipped steps are passed
// over transitively; when nothing ahead remains, current is returned.
func (n *Navigator) Next(current int, t Template, flags Flags) int {
	start := 0
	if current != StartStep {
		i := t.indexOf(current)
		if i < 0 {
			return StartStep
		}
		if i == len(t.Sequence)-1 {
			return current
		}
		start = i + 1
	}

	for _, id := range t.Sequence[start:] {
		if !n.skipped(id, flags) {
			return id
		}
	}
	return current
}

// Prev returns the step before current. StartStep, the first entry and
// unknown ids return StartStep. Skipped steps are passed over transitively;
// when nothing behind remains, StartStep is returned.
func (n *Navigator) Prev(current int, t Template, flags Flags) int {
	if current == StartStep {
		return StartStep
	}
	i := t.indexOf(current)
	if i <= 0 {
		return StartStep
	}

	for j := i - 1; j >= 0; j-- {
		if id := t.Sequence[j]; !n.skipped(id, flags) {
			return id
		}
	}
	return StartStep
}

// Visible returns the template's steps that are not skipped under flags.
func (n *Navigator) Visible(t Template, flags Flags) []int {
	out := make([]int, 0, len(t.Sequence))
	for _, id := range t.Sequence {
		if !n.skipped(id, flags) {
			out = append(out, id)
		}
	}
	return out
}
