package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := newRootCommand()
	flags := cmd.Flags()

	for name, want := range map[string]string{
		"profile":    "local",
		"config-dir": "configs",
		"output":     "dossier.pdf",
		"template":   "",
	} {
		got, err := flags.GetString(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	assert.NotNil(t, flags.ShorthandLookup("o"))
	assert.NotNil(t, flags.ShorthandLookup("t"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCommand()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SilenceErrors = true

	require.Error(t, cmd.Execute())
}

func TestOptions_Overrides(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&options{}).overrides())
	assert.Equal(t, map[string]any{
		"catalog.dir": "/etc/dossier/catalog",
		"assets.dir":  "/srv/assets",
	}, (&options{catalogDir: "/etc/dossier/catalog", assetsDir: "/srv/assets"}).overrides())
}
