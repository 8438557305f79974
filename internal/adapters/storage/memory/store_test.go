package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

func newSession(id string, updated time.Time) *wizard.Session {
	rec := record.New()
	rec.Fields["full_name"] = "NGUYEN VAN AN"
	return &wizard.Session{
		ID:         id,
		TemplateID: "private_sector",
		StepID:     1,
		Flags:      wizard.Flags{wizard.FlagHasSpouse: true},
		Record:     rec,
		CreatedAt:  updated,
		UpdatedAt:  updated,
	}
}

func TestStore_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, newSession("a", now)))
	require.ErrorIs(t, store.Create(ctx, newSession("a", now)), domain.ErrConflict)

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "NGUYEN VAN AN", got.Record.Text("full_name"))

	got.StepID = 2
	require.NoError(t, store.Save(ctx, got))

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, again.StepID)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, "a"), domain.ErrNotFound)
	require.ErrorIs(t, store.Save(ctx, got), domain.ErrNotFound)
}

func TestStore_IsolatesCallers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	sess := newSession("a", time.Now())
	require.NoError(t, store.Create(ctx, sess))

	sess.Record.Fields["full_name"] = "CHANGED"
	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got.Flags[wizard.FlagHasChildren] = true

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "NGUYEN VAN AN", again.Record.Text("full_name"))
	assert.False(t, again.Flags.Has(wizard.FlagHasChildren))
}

func TestStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, newSession("old", now.Add(-48*time.Hour))))
	require.NoError(t, store.Create(ctx, newSession("fresh", now.Add(-time.Hour))))

	n, err := store.DeleteExpired(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(ctx, "old")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
}
