package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/stackpack/stackpack/pkg/registry"
	"github.com/stackpack/stackpack/pkg/settings"
	"github.com/stackpack/stackpack/pkg/util/console"
)

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers [api]",
		Short: "List the providers registered for each stack API",
		Args:  cobra.MaximumNArgs(1),
		RunE:  providersCommand,
	}
}

func providersCommand(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}
	reg, err := registry.Default(cfg.CatalogPath)
	if err != nil {
		return err
	}

	apis := reg.StackApis()
	if len(args) == 1 {
		api, err := registry.ParseApi(args[0])
		if err != nil {
			return err
		}
		apis = []registry.Api{api}
	}

	allProviders := reg.ApiProviders()
	for _, api := range apis {
		console.Output(string(api) + ":")

		ids := make([]string, 0, len(allProviders[api]))
		for id := range allProviders[api] {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			spec := allProviders[api][id]
			line := fmt.Sprintf("  %s (%s)", id, spec.Kind)
			if spec.Adapter != nil {
				line = fmt.Sprintf("  %s (%s, adapter %s)", id, spec.Kind, spec.Adapter.AdapterID)
			}
			console.Output(line)
		}
	}
	return nil
}
