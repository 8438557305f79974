package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func fullSession(id string, updated time.Time) *wizard.Session {
	rec := record.New()
	rec.Fields["full_name"] = "NGUYEN VAN AN"
	rec.Fields["religion"] = []string{"Phật giáo"}
	rec.Groups["education"] = []record.Row{
		{"from": "09/2008", "to": "06/2012", "unit": "ABC University"},
	}
	return &wizard.Session{
		ID:         id,
		TemplateID: "state_employee",
		StepID:     5,
		Flags:      wizard.Flags{wizard.FlagHasSpouse: true},
		Record:     rec,
		Issues:     []validate.Issue{{Location: "education[0].field", Message: "Điền ngành học."}},
		CreatedAt:  updated.Add(-time.Hour),
		UpdatedAt:  updated,
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open("  ", time.Second)
	require.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	want := fullSession("a", time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))

	require.NoError(t, store.Create(ctx, want))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_CreateDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	sess := fullSession("a", time.Now())

	require.NoError(t, store.Create(ctx, sess))
	require.ErrorIs(t, store.Create(ctx, sess), domain.ErrConflict)
}

func TestStore_SaveAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	sess := fullSession("a", time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, sess))

	sess.StepID = 6
	sess.Completed = true
	sess.Issues = nil
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 6, got.StepID)
	assert.True(t, got.Completed)
	assert.Empty(t, got.Issues)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, store.Save(ctx, sess), domain.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, "a"), domain.ErrNotFound)
}

func TestStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, fullSession("old", now.Add(-72*time.Hour))))
	require.NoError(t, store.Create(ctx, fullSession("fresh", now)))

	n, err := store.DeleteExpired(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	assert.Equal(t, "sqlite", store.Name())
	assert.NoError(t, store.HealthCheck(context.Background()))
}
