package validate

import (
	"fmt"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
)

// FieldRule binds a chain to a record field.
type FieldRule struct {
	Key   string
	Chain Chain
}

// ColumnRule binds a chain to a repeating-group column.
type ColumnRule struct {
	Column string
	Chain  Chain
}

// TableRule validates one repeating group. Columns lists every declared
// column of the group and decides which rows count as blank; Rules holds
// the chains, in report order.
type TableRule struct {
	Group        string
	Mandatory    bool
	EmptyMessage string
	Columns      []string
	Rules        []ColumnRule
}

// ValidateField runs the field's chain against its value in rec.
func ValidateField(rule FieldRule, rec Context) (Issue, bool) {
	value, _ := rec.Lookup(rule.Key)
	if res := rule.Chain.Run(value, rec); !res.OK {
		return Issue{Location: rule.Key, Message: res.Message}, false
	}
	return Issue{}, true
}

// ValidateTable validates rows in stored order. Entirely blank rows are
// skipped; every other row runs all column chains with the row itself as
// context. A mandatory table with no filled row yields a single
// table-level issue.
func ValidateTable(rule TableRule, rows []record.Row) []Issue {
	var issues []Issue
	filled := 0

	for i, row := range rows {
		if row.Blank(rule.Columns) {
			continue
		}
		filled++
		for _, col := range rule.Rules {
			value, ok := row.Lookup(col.Column)
			if !ok {
				value = nil
			}
			if res := col.Chain.Run(value, row); !res.OK {
				issues = append(issues, Issue{
					Location: fmt.Sprintf("%s[%d].%s", rule.Group, i+1, col.Column),
					Message:  res.Message,
				})
			}
		}
	}

	if filled == 0 && rule.Mandatory {
		msg := rule.EmptyMessage
		if msg == "" {
			msg = MsgTableRequired
		}
		return []Issue{{Location: rule.Group, Message: msg}}
	}

	return issues
}

// Validate runs every field rule, then every table rule, against rec.
// Issues follow declaration order.
func Validate(rec record.Record, fields []FieldRule, tables []TableRule) []Issue {
	var issues []Issue
	for _, f := range fields {
		if issue, ok := ValidateField(f, rec); !ok {
			issues = append(issues, issue)
		}
	}
	for _, t := range tables {
		issues = append(issues, ValidateTable(t, rec.Groups[t.Group])...)
	}
	return issues
}
