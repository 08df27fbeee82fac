package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackpack/stackpack/pkg/global"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, global.DefaultBaseImage, s.BaseImage)
	require.Equal(t, "/usr/local/share/stackpack/scripts", s.ScriptsDir)
	require.True(t, filepath.IsAbs(s.BuildsDir), "BuildsDir should be expanded: %s", s.BuildsDir)
	require.Contains(t, s.BuildsDir, ".stackpack")
	require.Empty(t, s.CatalogPath)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("STACKPACK_BUILDS_DIR", "/var/lib/stackpack/builds")
	t.Setenv("STACKPACK_SCRIPTS_DIR", "/opt/stackpack/scripts")
	t.Setenv("STACKPACK_BASE_IMAGE", "ubuntu:24.04")
	t.Setenv("STACKPACK_CATALOG_PATH", "/etc/stackpack/catalog.yaml")

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/stackpack/builds", s.BuildsDir)
	require.Equal(t, "/opt/stackpack/scripts", s.ScriptsDir)
	require.Equal(t, "ubuntu:24.04", s.BaseImage)
	require.Equal(t, "/etc/stackpack/catalog.yaml", s.CatalogPath)
}
