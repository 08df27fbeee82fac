package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackpack/stackpack/pkg/build"
	"github.com/stackpack/stackpack/pkg/registry"
	"github.com/stackpack/stackpack/pkg/settings"
	"github.com/stackpack/stackpack/pkg/util/console"
)

var buildProvider string
var buildDependencies string
var buildName string
var buildType string

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <api>",
		Short: "Build a deployable package for a stack API provider",
		Long: `Build a container image or an isolated environment for a stack API provider,
including the packages of any downstream providers it depends on.`,
		Args: cobra.ExactArgs(1),
		RunE: buildCommand,
	}
	cmd.Flags().StringVar(&buildProvider, "provider", "", "The provider to package")
	_ = cmd.MarkFlagRequired("provider")
	cmd.Flags().StringVar(&buildDependencies, "dependencies", "", "Comma separated list of downstream api=provider dependencies")
	cmd.Flags().StringVar(&buildName, "name", "", "Name of the build target (image, environment). Defaults to a random token")
	cmd.Flags().StringVar(&buildType, "type", string(build.KindContainer), "Build kind: 'container' or 'isolated-environment'")
	return cmd
}

func buildCommand(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	api, err := registry.ParseApi(args[0])
	if err != nil {
		return err
	}
	kind, err := build.ParseKind(buildType)
	if err != nil {
		return err
	}

	reg, err := registry.Default(cfg.CatalogPath)
	if err != nil {
		return err
	}

	target, err := build.NewTarget(build.Options{
		Api:          api,
		ProviderID:   buildProvider,
		Kind:         kind,
		Dependencies: buildDependencies,
		Name:         buildName,
		Registry:     reg,
		Names:        build.DefaultNameSource(),
	})
	if err != nil {
		return err
	}

	descriptorPath := build.DescriptorPath(cfg.BuildsDir, target.Api, target.PackageName)
	if err := target.Write(descriptorPath); err != nil {
		return err
	}

	invoker := &build.Invoker{ScriptsDir: cfg.ScriptsDir, BaseImage: cfg.BaseImage}
	if err := invoker.Invoke(cmd.Context(), target, descriptorPath); err != nil {
		return err
	}

	console.Infof("Target `%s` built with configuration at %s", target.PackageName, descriptorPath)
	return nil
}
