package app

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/catalog"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

var fixedNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	reg := validate.NewRegistry(validate.WithClock(func() time.Time { return fixedNow }))
	cat, err := catalog.Default(reg)
	require.NoError(t, err)
	return cat
}

func sessionAt(step int, flags wizard.Flags) *wizard.Session {
	return &wizard.Session{
		ID:         "sess-1",
		TemplateID: "private_sector",
		StepID:     step,
		Flags:      flags,
		Record:     record.New(),
		CreatedAt:  fixedNow.Add(-time.Hour),
		UpdatedAt:  fixedNow.Add(-time.Hour),
	}
}

// validPrivateSectorInput passes every visible private_sector step when no
// flags are set.
func validPrivateSectorInput() record.RawInput {
	return record.RawInput{
		Fields: map[string]any{
			"full_name":          "NGUYEN VAN AN",
			"dob":                "1990-05-02",
			"id_number":          "001090012345",
			"id_issue_date":      "2015-06-01",
			"registered_address": "12 Hang Bai, Hoan Kiem",
			"phone":              "0912345678",
			"emergency_name":     "TRAN THI BINH",
			"emergency_phone":    "0987654321",
		},
		Groups: map[string][]map[string]any{
			"education": {
				{"from": "09/2008", "to": "06/2012", "unit": "ABC University", "field": "Kinh tế"},
			},
			"family": {
				{"relation": "Bố", "name": "NGUYEN VAN CUONG", "birth_year": "1960"},
			},
		},
	}
}

const testCanvas = `
name: private_sector
pages:
  - {width: 595.28, height: 841.89}
  - {width: 595.28, height: 841.89}
`
