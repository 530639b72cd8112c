package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	cmd := Sweep()

	require.NotNil(t, cmd)
	assert.Equal(t, "sweep", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestSweep_Flags(t *testing.T) {
	cmd := Sweep()

	for _, name := range []string{"config", "profile", "region", "dry-run", "parallel"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}

	assert.Equal(t, "false", cmd.Flags().Lookup("dry-run").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("parallel").DefValue)
}

func TestSweep_FlagShorthands(t *testing.T) {
	cmd := Sweep()

	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
	assert.Equal(t, "p", cmd.Flags().Lookup("profile").Shorthand)
	assert.Equal(t, "r", cmd.Flags().Lookup("region").Shorthand)
}
