package validate

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
)

func educationRule(mandatory bool) TableRule {
	month := regexp.MustCompile(builtinPatterns[PatternMonth])
	return TableRule{
		Group:     "education",
		Mandatory: mandatory,
		Columns:   []string{"from", "to", "unit", "format"},
		Rules: []ColumnRule{
			{Column: "from", Chain: Chain{Required("from required"), Pattern(month, "use MM/YYYY")}},
			{Column: "to", Chain: Chain{
				Required("to required"), Pattern(month, "use MM/YYYY"), DateAfter("from", "to must follow from"),
			}},
			{Column: "unit", Chain: Chain{Required("unit required"), MaxLength(26, "unit too long")}},
		},
	}
}

func TestValidateTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mandatory bool
		rows      []record.Row
		want      []Issue
	}{
		{
			name: "fully blank row yields no issues",
			rows: []record.Row{{"from": "", "to": " ", "unit": ""}},
		},
		{
			name: "partially filled second row reports its own index",
			rows: []record.Row{
				{"from": "09/2008", "to": "06/2012", "unit": "ABC University"},
				{"from": "", "to": "", "unit": "Night school"},
			},
			want: []Issue{
				{Location: "education[2].from", Message: "from required"},
				{Location: "education[2].to", Message: "to required"},
			},
		},
		{
			name: "single blank required column in a partial row",
			rows: []record.Row{{"from": "09/2008", "to": "06/2012", "unit": ""}},
			want: []Issue{{Location: "education[1].unit", Message: "unit required"}},
		},
		{
			name: "trailing blank rows are skipped and indexes stay 1-based",
			rows: []record.Row{
				{},
				{"from": "06/2022", "to": "06/2022", "unit": "X"},
				{"from": "", "to": "", "unit": "", "format": ""},
			},
			want: []Issue{{Location: "education[2].to", Message: "to must follow from"}},
		},
		{
			name:      "empty mandatory table yields one table-level issue",
			mandatory: true,
			rows:      []record.Row{{}, {"unit": "  "}},
			want:      []Issue{{Location: "education", Message: MsgTableRequired}},
		},
		{
			name:      "nil mandatory table yields one table-level issue",
			mandatory: true,
			want:      []Issue{{Location: "education", Message: MsgTableRequired}},
		},
		{
			name: "empty optional table is fine",
		},
		{
			name: "row with only a defaulted column counts as filled",
			rows: []record.Row{{"format": "Chính quy"}},
			want: []Issue{
				{Location: "education[1].from", Message: "from required"},
				{Location: "education[1].to", Message: "to required"},
				{Location: "education[1].unit", Message: "unit required"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ValidateTable(educationRule(tt.mandatory), tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ValidateTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateTable_DoesNotReorderRows(t *testing.T) {
	t.Parallel()

	rows := []record.Row{
		{"from": "09/2012", "to": "06/2016", "unit": "B"},
		{"from": "09/2008", "to": "06/2012", "unit": "A"},
	}
	before := []record.Row{
		{"from": "09/2012", "to": "06/2016", "unit": "B"},
		{"from": "09/2008", "to": "06/2012", "unit": "A"},
	}

	_ = ValidateTable(educationRule(true), rows)

	if diff := cmp.Diff(before, rows); diff != "" {
		t.Errorf("ValidateTable() changed rows (-before +after):\n%s", diff)
	}
}

func TestValidate_FieldsThenTables(t *testing.T) {
	t.Parallel()

	rec := record.New()
	rec.Fields["full_name"] = "nguyen van a"
	rec.Groups["education"] = []record.Row{{"from": "13/2008", "to": "06/2012", "unit": "A"}}

	name := regexp.MustCompile(builtinPatterns[PatternFullName])
	fields := []FieldRule{
		{Key: "full_name", Chain: Chain{Required("name required"), Pattern(name, "name must be uppercase")}},
		{Key: "dob", Chain: Chain{Required("dob required")}},
	}

	got := Validate(rec, fields, []TableRule{educationRule(true)})
	want := []Issue{
		{Location: "full_name", Message: "name must be uppercase"},
		{Location: "dob", Message: "dob required"},
		{Location: "education[1].from", Message: "use MM/YYYY"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_CrossFieldUsesRecord(t *testing.T) {
	t.Parallel()

	rec := record.New()
	rec.Fields["academic_title"] = "Phó giáo sư"

	issue, ok := ValidateField(FieldRule{
		Key:   "title_year",
		Chain: Chain{RequiredWith("academic_title", "year needed")},
	}, rec)
	if ok || issue.Message != "year needed" {
		t.Errorf("ValidateField() = %+v, %v; want year needed", issue, ok)
	}
}
