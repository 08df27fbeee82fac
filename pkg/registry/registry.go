package registry

import (
	"github.com/stackpack/stackpack/pkg/errors"
)

// Registry is the read-only handle the build path is given. It is loaded
// fresh once per invocation; nothing in this package mutates it afterwards.
type Registry interface {
	// ApiProviders maps each API to its registered providers, keyed by
	// provider id.
	ApiProviders() map[Api]map[string]ProviderSpec

	// StackApis lists every API of the stack.
	StackApis() []Api
}

type catalogRegistry struct {
	providers map[Api]map[string]ProviderSpec
}

// New builds a Registry from a validated catalog.
func New(c *Catalog) (Registry, error) {
	providers, err := c.providerSpecs()
	if err != nil {
		return nil, err
	}
	return &catalogRegistry{providers: providers}, nil
}

// Default returns the registry for the builtin catalog, overlaid with the
// catalog file at catalogPath when one is configured.
func Default(catalogPath string) (Registry, error) {
	c := Builtin()
	if catalogPath != "" {
		loaded, err := LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		c.merge(loaded)
	}
	return New(c)
}

func (r *catalogRegistry) ApiProviders() map[Api]map[string]ProviderSpec {
	return r.providers
}

func (r *catalogRegistry) StackApis() []Api {
	return StackApis()
}

// LookupProvider resolves a provider id for an API against the registry.
func LookupProvider(reg Registry, api Api, providerID string) (ProviderSpec, error) {
	providers, ok := reg.ApiProviders()[api]
	if !ok {
		return ProviderSpec{}, errors.UnknownAPI(string(api))
	}
	spec, ok := providers[providerID]
	if !ok {
		return ProviderSpec{}, errors.UnknownProvider(string(api), providerID)
	}
	return spec, nil
}
