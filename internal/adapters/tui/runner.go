package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

const blankOption = "(leave blank)"

// flagQuestions are asked once, before the first step, in this order.
var flagQuestions = []struct {
	flag    wizard.Flag
	message string
}{
	{wizard.FlagHasSpouse, "Are you married?"},
	{wizard.FlagHasChildren, "Do you have children?"},
	{wizard.FlagHasPartyMembership, "Are you a party member?"},
	{wizard.FlagNeedsClearance, "Does the dossier need a background clearance section?"},
}

var kindHelp = map[record.Kind]string{
	record.KindDate:   "Format: YYYY-MM-DD",
	record.KindMonth:  "Format: MM/YYYY",
	record.KindYear:   "Format: YYYY",
	record.KindNumber: "A number",
}

// Runner walks one session from template choice to rendered document.
type Runner struct {
	svc    ports.WizardService
	schema *record.Schema
	driver PromptDriver
}

// NewRunner returns a Runner that prompts through driver. Field labels,
// kinds and choices come from schema.
func NewRunner(svc ports.WizardService, schema *record.Schema, driver PromptDriver) *Runner {
	return &Runner{svc: svc, schema: schema, driver: driver}
}

// Run prompts for a template (unless templateID is set), the session flags
// and every visible step, then renders the finished record.
func (r *Runner) Run(ctx context.Context, templateID string) (*layout.Document, error) {
	tpl, err := r.chooseTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	flags, err := r.askFlags(ctx)
	if err != nil {
		return nil, err
	}

	out, err := r.svc.Start(ctx, tpl, flags)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	id := out.Session.ID

	for !out.Session.Completed {
		if out.Step == nil {
			from := out.Session.StepID
			if out, err = r.svc.Submit(ctx, id, record.RawInput{}); err != nil {
				return nil, err
			}
			if out.Step == nil && !out.Session.Completed && out.Session.StepID == from {
				return nil, fmt.Errorf("template %q has no step to ask from step %d", tpl, from)
			}
			continue
		}

		raw, err := r.askStep(ctx, out.Step, out.Session.Record)
		if err != nil {
			return nil, err
		}
		next, err := r.svc.Submit(ctx, id, raw)
		if err != nil {
			return nil, err
		}
		if !next.Accepted {
			if next, err = r.recover(ctx, id, next); err != nil {
				return nil, err
			}
		}
		out = next
	}

	doc, err := r.svc.Document(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return doc, nil
}

func (r *Runner) chooseTemplate(ctx context.Context, templateID string) (string, error) {
	if templateID != "" {
		return templateID, nil
	}
	templates := r.svc.Templates(ctx)
	if len(templates) == 0 {
		return "", errors.New("no dossier templates available")
	}
	options := make([]string, len(templates))
	for i, t := range templates {
		options[i] = t.Name
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Dossier template", Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(templates) {
		return "", fmt.Errorf("template choice %d out of range", idx)
	}
	return templates[idx].ID, nil
}

func (r *Runner) askFlags(ctx context.Context) (map[string]bool, error) {
	flags := make(map[string]bool, len(flagQuestions))
	for _, q := range flagQuestions {
		on, err := r.driver.Confirm(ctx, ConfirmConfig{Message: q.message})
		if err != nil {
			return nil, err
		}
		flags[q.flag.String()] = on
	}
	return flags, nil
}

func (r *Runner) askStep(ctx context.Context, step *wizard.StepDefinition, rec record.Record) (record.RawInput, error) {
	header := step.Title
	if step.Subtitle != "" {
		header += " - " + step.Subtitle
	}
	if err := r.driver.Info(ctx, header); err != nil {
		return record.RawInput{}, err
	}

	raw := record.RawInput{Fields: make(map[string]any)}
	for _, key := range step.FieldKeys() {
		def, ok := r.schema.Field(key)
		if !ok {
			return record.RawInput{}, fmt.Errorf("step %d collects undeclared field %q", step.ID, key)
		}
		v, err := r.ask(ctx, def.Label, def.Kind, def.Options, rec.Text(key))
		if err != nil {
			return record.RawInput{}, err
		}
		raw.Fields[key] = v
	}

	for _, table := range step.Tables {
		rows, keep, err := r.askGroup(ctx, table, rec.Groups[table.Group])
		if err != nil {
			return record.RawInput{}, err
		}
		if keep {
			continue
		}
		if raw.Groups == nil {
			raw.Groups = make(map[string][]map[string]any)
		}
		raw.Groups[table.Group] = rows
	}
	return raw, nil
}

// askGroup collects the rows of one repeating group. Rows already in the
// record can be kept as they are.
func (r *Runner) askGroup(ctx context.Context, table validate.TableRule, existing []record.Row) ([]map[string]any, bool, error) {
	g, ok := r.schema.Group(table.Group)
	if !ok {
		return nil, false, fmt.Errorf("step collects undeclared group %q", table.Group)
	}

	if len(existing) > 0 {
		keep, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep the %d %s row(s) already entered?", len(existing), g.Label),
			Default: true,
		})
		if err != nil || keep {
			return nil, keep, err
		}
	}

	rows := []map[string]any{}
	for {
		add, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add a row to %s?", g.Label),
			Default: len(rows) == 0 && table.Mandatory,
		})
		if err != nil {
			return nil, false, err
		}
		if !add {
			return rows, false, nil
		}
		row := make(map[string]any, len(g.Columns))
		for _, col := range g.Columns {
			v, err := r.ask(ctx, col.Label, col.Kind, col.Options, "")
			if err != nil {
				return nil, false, err
			}
			row[col.Key] = v
		}
		rows = append(rows, row)
	}
}

func (r *Runner) ask(ctx context.Context, label string, kind record.Kind, options []string, current string) (string, error) {
	if kind == record.KindChoice && len(options) > 0 {
		choices := append([]string{blankOption}, options...)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      choices,
			DefaultIndex: slices.Index(choices, current),
		})
		if err != nil {
			return "", err
		}
		if idx <= 0 || idx >= len(choices) {
			return "", nil
		}
		return choices[idx], nil
	}
	return r.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: kindHelp[kind]})
}

// recover shows the issues of a rejected step and lets the user go back
// instead of fixing them.
func (r *Runner) recover(ctx context.Context, id string, out *ports.StepOutcome) (*ports.StepOutcome, error) {
	for _, issue := range out.Issues {
		if err := r.driver.Info(ctx, fmt.Sprintf("  %s: %s", issue.Location, issue.Message)); err != nil {
			return nil, err
		}
	}
	back, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Go back to the previous step?"})
	if err != nil {
		return nil, err
	}
	if !back {
		return out, nil
	}
	return r.svc.Back(ctx, id)
}
