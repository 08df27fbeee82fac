// Package settings holds process-wide configuration, populated from the
// environment with a STACKPACK_ prefix.
package settings

import (
	"github.com/kelseyhightower/envconfig"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/stackpack/stackpack/pkg/global"
)

type Settings struct {
	// BuildsDir is where build descriptors are written, one subdirectory per API.
	BuildsDir string `split_words:"true" default:"~/.stackpack/builds"`

	// ScriptsDir holds the external build scripts (build_container.sh,
	// build_venv.sh) the invoker shells out to.
	ScriptsDir string `split_words:"true" default:"/usr/local/share/stackpack/scripts"`

	// CatalogPath optionally points at a YAML provider catalog that overrides
	// the builtin one.
	CatalogPath string `split_words:"true"`

	// BaseImage is the container base image used when no provider declares one.
	BaseImage string `split_words:"true"`
}

// Load reads settings from the environment and expands any leading ~ in paths.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("stackpack", &s); err != nil {
		return nil, err
	}

	var err error
	if s.BuildsDir, err = homedir.Expand(s.BuildsDir); err != nil {
		return nil, err
	}
	if s.ScriptsDir, err = homedir.Expand(s.ScriptsDir); err != nil {
		return nil, err
	}

	if s.BaseImage == "" {
		s.BaseImage = global.DefaultBaseImage
	}
	return &s, nil
}
