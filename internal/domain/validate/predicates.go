package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	isoLayout   = "2006-01-02"
	monthLayout = "01/2006"
)

// Default messages used when a rule declares none.
const (
	MsgRequired      = "This field is required."
	MsgChoice        = "Please make a selection."
	MsgPattern       = "Value has an invalid format."
	MsgMaxLength     = "Value is too long."
	MsgDateRange     = "Date is outside the allowed range."
	MsgDateFormat    = "Date format is invalid."
	MsgDateAfter     = "End must be after start."
	MsgYearRange     = "Year is outside the allowed range."
	MsgYearNumeric   = "Year must be a number."
	MsgNumeric       = "Value must be a number."
	MsgOneOf         = "Value is not one of the allowed options."
	MsgRequiredWith  = "This field is required when its pair is filled."
	MsgTableRequired = "At least one row is required."
)

// IsBlank reports nil, whitespace-only strings and empty collections.
// Numbers, including zero, are never blank.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

// Required rejects blank values.
func Required(msg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Fail(msg)
		}
		return Pass()
	}
}

// RequiredChoice rejects an unanswered selection.
func RequiredChoice(msg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Fail(msg)
		}
		return Pass()
	}
}

// Pattern rejects non-blank strings that do not match re.
func Pattern(re *regexp.Regexp, msg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		if !re.MatchString(text(v)) {
			return Fail(msg)
		}
		return Pass()
	}
}

// MaxLength rejects strings longer than limit runes.
func MaxLength(limit int, msg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		if utf8.RuneCountInString(text(v)) > limit {
			return Fail(msg)
		}
		return Pass()
	}
}

// DateRange checks an ISO date against inclusive bounds. bounds is called on
// every evaluation so an upper bound of "today" follows the injected clock.
// A malformed date yields formatMsg.
func DateRange(bounds func() (lo, hi time.Time), msg, formatMsg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		d, err := time.Parse(isoLayout, text(v))
		if err != nil {
			return Fail(formatMsg)
		}
		lo, hi := bounds()
		if (!lo.IsZero() && d.Before(lo)) || (!hi.IsZero() && d.After(hi)) {
			return Fail(msg)
		}
		return Pass()
	}
}

// DateAfter requires an MM/YYYY value strictly later than the sibling's.
// Blank or unparsable operands pass; format is the pattern rule's concern.
func DateAfter(sibling, msg string) Validator {
	return func(v any, ctx Context) Result {
		other, _ := ctx.Lookup(sibling)
		if IsBlank(v) || IsBlank(other) {
			return Pass()
		}
		to, err := time.Parse(monthLayout, text(v))
		if err != nil {
			return Pass()
		}
		from, err := time.Parse(monthLayout, text(other))
		if err != nil {
			return Pass()
		}
		if !to.After(from) {
			return Fail(msg)
		}
		return Pass()
	}
}

// YearRange checks an integer year against [lo, hi()]. Non-numeric content
// fails with numericMsg.
func YearRange(lo int, hi func() int, msg, numericMsg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		y, err := strconv.Atoi(text(v))
		if err != nil {
			return Fail(numericMsg)
		}
		if y < lo || y > hi() {
			return Fail(msg)
		}
		return Pass()
	}
}

// Numeric rejects non-blank values that do not parse as numbers.
func Numeric(msg string) Validator {
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		if _, ok := v.(float64); ok {
			return Pass()
		}
		if _, err := strconv.ParseFloat(text(v), 64); err != nil {
			return Fail(msg)
		}
		return Pass()
	}
}

// OneOf rejects non-blank values outside options. Multi-value choices must
// have every element in options.
func OneOf(options []string, msg string) Validator {
	allowed := make(map[string]bool, len(options))
	for _, o := range options {
		allowed[o] = true
	}
	return func(v any, _ Context) Result {
		if IsBlank(v) {
			return Pass()
		}
		if list, ok := v.([]string); ok {
			for _, item := range list {
				if !allowed[item] {
					return Fail(msg)
				}
			}
			return Pass()
		}
		if !allowed[text(v)] {
			return Fail(msg)
		}
		return Pass()
	}
}

// RequiredWith makes a value required once its sibling is filled.
func RequiredWith(sibling, msg string) Validator {
	return func(v any, ctx Context) Result {
		other, _ := ctx.Lookup(sibling)
		if !IsBlank(other) && IsBlank(v) {
			return Fail(msg)
		}
		return Pass()
	}
}
