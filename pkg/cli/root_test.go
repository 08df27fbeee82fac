package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd, err := NewRootCommand()
	require.NoError(t, err)

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Contains(t, names, "build")
	require.Contains(t, names, "providers")
}

func TestBuildCommandFlags(t *testing.T) {
	cmd := newBuildCommand()

	for _, flag := range []string{"provider", "dependencies", "name", "type"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
	require.Equal(t, "container", cmd.Flags().Lookup("type").DefValue)
}
