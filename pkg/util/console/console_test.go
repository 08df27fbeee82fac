package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTTYRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	// a regular file is never a terminal, so color must be off when
	// output is piped or redirected
	require.False(t, IsTTY(f))
}

func TestSetColor(t *testing.T) {
	original := ConsoleInstance.Color
	defer SetColor(original)

	SetColor(false)
	require.False(t, ConsoleInstance.Color)
	SetColor(true)
	require.True(t, ConsoleInstance.Color)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "debug", DebugLevel.String())
	require.Equal(t, "fatal", FatalLevel.String())
}
