package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"serve"},
		{"seed"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "status"},
		{"migrate", "reset"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestMigrateRequiresPostgres(t *testing.T) {
	t.Setenv("JUNCTION_DATABASE_DRIVER", "memory")
	t.Setenv("JUNCTION_SERVER_LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "up"})
	err := root.Execute()
	assert.ErrorContains(t, err, "migrate requires the postgres driver")
}

func TestSeedCommandWithMemoryDriver(t *testing.T) {
	t.Setenv("JUNCTION_DATABASE_DRIVER", "memory")
	t.Setenv("JUNCTION_SERVER_LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetArgs([]string{"seed", "--random-seed", "42"})
	assert.NoError(t, root.Execute())
}

func TestMissingConfigFile(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"seed", "--config", "does-not-exist.yaml"})
	assert.ErrorContains(t, root.Execute(), "failed to load configuration")
}
