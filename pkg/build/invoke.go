package build

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/stackpack/stackpack/pkg/util/console"
)

const (
	containerScript = "build_container.sh"
	venvScript      = "build_venv.sh"
)

// Invoker runs the external build script for a target and waits for it to
// finish. The scripts are opaque to us; the contract is positional arguments
// in and an exit code out.
type Invoker struct {
	// ScriptsDir holds the build scripts, one per build kind.
	ScriptsDir string
	// BaseImage is used for container builds when the merge yielded no image.
	BaseImage string
}

// Invoke runs the build for a target whose descriptor has already been
// written to descriptorPath. Build output goes to stderr. A nonzero exit is
// fatal for the invocation; the descriptor is left on disk for inspection.
func (iv *Invoker) Invoke(ctx context.Context, t *Target, descriptorPath string) error {
	var script string
	var args []string
	switch t.Kind {
	case KindContainer:
		script = filepath.Join(iv.ScriptsDir, containerScript)
		image := t.Deps.DockerImage
		if image == "" {
			image = iv.BaseImage
		}
		args = []string{string(t.Api), t.PackageName, image, strings.Join(t.Deps.PipPackages, " ")}
	default:
		script = filepath.Join(iv.ScriptsDir, venvScript)
		args = []string{string(t.Api), t.PackageName, strings.Join(t.Deps.PipPackages, " ")}
	}

	cmd := exec.CommandContext(ctx, script, args...)
	cmd.Stdout = os.Stderr // build output is all messaging, keep stdout clean
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build target %s (descriptor left at %s): %w", t.PackageName, descriptorPath, err)
	}
	return nil
}
