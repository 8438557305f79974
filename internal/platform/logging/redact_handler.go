package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. The HTTP middleware's
// RedactHeaders utility reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// PersonalFields names the dossier record keys whose values identify a
// person. A log attribute with one of these keys is always redacted, even
// when a service logs a field value for diagnostics.
var PersonalFields = []string{
	"full_name",
	"dob",
	"id_number",
	"phone",
	"email",
	"registered_address",
	"current_address",
	"spouse_name",
	"party_card_number",
	"emergency_name",
	"emergency_phone",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// idNumberPattern matches bare 9 or 12 digit identity card numbers.
var idNumberPattern = regexp.MustCompile(`^(\d{9}|\d{12})$`)

// phonePattern matches domestic mobile numbers such as 0912345678.
var phonePattern = regexp.MustCompile(`^0\d{9}$`)

// fixedRedactOptions counts the masq options beyond SensitiveHeaders and
// PersonalFields (2 field names + 2 prefixes + 3 regexes).
const fixedRedactOptions = 7

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders)+len(PersonalFields))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range PersonalFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),

		// Raw submissions are logged under "input.*" or "record.*" groups.
		masq.WithFieldPrefix("input"),
		masq.WithFieldPrefix("record"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(idNumberPattern),
		masq.WithRegex(phonePattern),
	)

	return masq.New(opts...)
}
