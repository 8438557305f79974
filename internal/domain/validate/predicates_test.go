package validate

import (
	"regexp"
	"testing"
	"time"
)

type mapContext map[string]any

func (m mapContext) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil fails", value: nil, want: false},
		{name: "empty string fails", value: "", want: false},
		{name: "whitespace fails", value: "   ", want: false},
		{name: "empty list fails", value: []string{}, want: false},
		{name: "empty any list fails", value: []any{}, want: false},
		{name: "text passes", value: "some value", want: true},
		{name: "zero passes", value: 0.0, want: true},
		{name: "non-empty list passes", value: []string{"item"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Required("required")(tt.value, NoContext)
			if got.OK != tt.want {
				t.Errorf("Required(%v).OK = %v, want %v", tt.value, got.OK, tt.want)
			}
		})
	}
}

func TestPatternAndMaxLength_PassBlank(t *testing.T) {
	t.Parallel()

	phone := regexp.MustCompile(builtinPatterns[PatternPhone])
	validators := map[string]Validator{
		"pattern":    Pattern(phone, "bad phone"),
		"max_length": MaxLength(10, "too long"),
	}

	for name, v := range validators {
		for _, blank := range []any{nil, "", "  "} {
			if res := v(blank, NoContext); !res.OK {
				t.Errorf("%s(%q) failed, want pass for blank input", name, blank)
			}
		}
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	phone := Pattern(regexp.MustCompile(builtinPatterns[PatternPhone]), "bad phone")

	if res := phone("0987654321", NoContext); !res.OK {
		t.Errorf("valid phone rejected: %s", res.Message)
	}
	for _, bad := range []string{"987654321", "09876543210", "09876abcde"} {
		if res := phone(bad, NoContext); res.OK || res.Message != "bad phone" {
			t.Errorf("phone(%q) = %+v, want failure", bad, res)
		}
	}
}

func TestMaxLength_CountsRunes(t *testing.T) {
	t.Parallel()

	v := MaxLength(10, "too long")
	tests := []struct {
		value string
		want  bool
	}{
		{"12345", true},
		{"1234567890", true},
		{"12345678901", false},
		{"NGUYỄN ĐỨC", true},
	}
	for _, tt := range tests {
		if got := v(tt.value, NoContext).OK; got != tt.want {
			t.Errorf("MaxLength(10)(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDateRange(t *testing.T) {
	t.Parallel()

	lo := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	v := DateRange(func() (time.Time, time.Time) { return lo, hi }, "out of range", "bad format")

	tests := []struct {
		value   string
		wantOK  bool
		wantMsg string
	}{
		{value: "1900-01-01", wantOK: true},
		{value: "2024-06-30", wantOK: true},
		{value: "1990-05-02", wantOK: true},
		{value: "1899-12-31", wantMsg: "out of range"},
		{value: "2024-07-01", wantMsg: "out of range"},
		{value: "02/05/1990", wantMsg: "bad format"},
		{value: "", wantOK: true},
	}
	for _, tt := range tests {
		got := v(tt.value, NoContext)
		if got.OK != tt.wantOK || got.Message != tt.wantMsg {
			t.Errorf("DateRange(%q) = %+v, want ok=%v msg=%q", tt.value, got, tt.wantOK, tt.wantMsg)
		}
	}
}

func TestDateAfter(t *testing.T) {
	t.Parallel()

	v := DateAfter("from", "must be after")
	tests := []struct {
		name string
		from any
		to   any
		want bool
	}{
		{name: "equal fails", from: "06/2022", to: "06/2022", want: false},
		{name: "next month passes", from: "06/2022", to: "07/2022", want: true},
		{name: "earlier month fails", from: "06/2022", to: "05/2022", want: false},
		{name: "earlier year fails", from: "06/2022", to: "12/2021", want: false},
		{name: "later year passes", from: "12/2021", to: "01/2022", want: true},
		{name: "blank dependent passes", from: "06/2022", to: "", want: true},
		{name: "blank sibling passes", from: nil, to: "06/2022", want: true},
		{name: "malformed passes", from: "June 2022", to: "06/2022", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := v(tt.to, mapContext{"from": tt.from})
			if got.OK != tt.want {
				t.Errorf("DateAfter(%v > %v).OK = %v, want %v", tt.to, tt.from, got.OK, tt.want)
			}
		})
	}
}

func TestYearRange(t *testing.T) {
	t.Parallel()

	v := YearRange(1900, func() int { return 2025 }, "out of range", "not a number")
	tests := []struct {
		value   any
		wantOK  bool
		wantMsg string
	}{
		{value: "1900", wantOK: true},
		{value: "2025", wantOK: true},
		{value: 1960.0, wantOK: true},
		{value: "1899", wantMsg: "out of range"},
		{value: "2026", wantMsg: "out of range"},
		{value: "19x0", wantMsg: "not a number"},
		{value: "", wantOK: true},
	}
	for _, tt := range tests {
		got := v(tt.value, NoContext)
		if got.OK != tt.wantOK || got.Message != tt.wantMsg {
			t.Errorf("YearRange(%v) = %+v, want ok=%v msg=%q", tt.value, got, tt.wantOK, tt.wantMsg)
		}
	}
}

func TestRequiredWith_PairRule(t *testing.T) {
	t.Parallel()

	title := RequiredWith("title_year", "title needed")
	year := RequiredWith("academic_title", "year needed")

	tests := []struct {
		name      string
		ctx       mapContext
		wantTitle bool
		wantYear  bool
	}{
		{name: "both blank", ctx: mapContext{}, wantTitle: true, wantYear: true},
		{name: "both filled", ctx: mapContext{"academic_title": "Giáo sư", "title_year": "2015"}, wantTitle: true, wantYear: true},
		{name: "title only", ctx: mapContext{"academic_title": "Giáo sư"}, wantTitle: true, wantYear: false},
		{name: "year only", ctx: mapContext{"title_year": "2015"}, wantTitle: false, wantYear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := title(tt.ctx["academic_title"], tt.ctx).OK; got != tt.wantTitle {
				t.Errorf("title rule = %v, want %v", got, tt.wantTitle)
			}
			if got := year(tt.ctx["title_year"], tt.ctx).OK; got != tt.wantYear {
				t.Errorf("year rule = %v, want %v", got, tt.wantYear)
			}
		})
	}
}

func TestOneOfAndNumeric(t *testing.T) {
	t.Parallel()

	oneOf := OneOf([]string{"Nam", "Nữ"}, "bad choice")
	if !oneOf("Nữ", NoContext).OK || oneOf("Khác", NoContext).OK {
		t.Error("OneOf did not enforce options")
	}
	if oneOf([]string{"Nam", "X"}, NoContext).OK {
		t.Error("OneOf accepted a list with an unknown element")
	}

	numeric := Numeric("nan")
	if !numeric("42", NoContext).OK || !numeric(0.0, NoContext).OK || numeric("4two", NoContext).OK {
		t.Error("Numeric misclassified input")
	}
}

func TestChain_ShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(any, Context) Result {
		calls++
		return Fail("pattern message")
	}
	chain := Chain{Required("required message"), counting}

	got := chain.Run("", NoContext)
	if got.OK || got.Message != "required message" {
		t.Errorf("Run(\"\") = %+v, want required message", got)
	}
	if calls != 0 {
		t.Errorf("later validator ran %d times after a failure", calls)
	}

	got = chain.Run("x", NoContext)
	if got.Message != "pattern message" || calls != 1 {
		t.Errorf("Run(\"x\") = %+v calls=%d, want pattern message once", got, calls)
	}
}
