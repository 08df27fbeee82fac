package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/stackpack/stackpack/pkg/errors"
)

// Catalog is the serialized form of the provider registry: for each API, a
// mapping of provider id to spec.
type Catalog struct {
	Apis map[string]CatalogApi `yaml:"apis"`
}

type CatalogApi struct {
	Providers map[string]ProviderSpec `yaml:"providers"`
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider catalog %s: %w", path, err)
	}
	c := &Catalog{}
	if err := yaml.Unmarshal(contents, c); err != nil {
		return nil, errors.CatalogInvalid(fmt.Sprintf("provider catalog %s is not valid YAML: %s", path, err))
	}
	return c, nil
}

// merge overlays another catalog onto this one. Providers with the same API
// and id are replaced; everything else is added.
func (c *Catalog) merge(other *Catalog) {
	if c.Apis == nil {
		c.Apis = map[string]CatalogApi{}
	}
	for apiName, api := range other.Apis {
		existing, ok := c.Apis[apiName]
		if !ok || existing.Providers == nil {
			existing = CatalogApi{Providers: map[string]ProviderSpec{}}
		}
		for id, spec := range api.Providers {
			existing.Providers[id] = spec
		}
		c.Apis[apiName] = existing
	}
}

// providerSpecs validates the catalog and stamps each spec with its API and
// provider id, returning the lookup structure the registry serves.
func (c *Catalog) providerSpecs() (map[Api]map[string]ProviderSpec, error) {
	out := map[Api]map[string]ProviderSpec{}
	for _, api := range StackApis() {
		out[api] = map[string]ProviderSpec{}
	}

	for apiName, catalogApi := range c.Apis {
		api, err := ParseApi(apiName)
		if err != nil {
			return nil, errors.CatalogInvalid(fmt.Sprintf("catalog names unknown API `%s`", apiName))
		}
		for id, spec := range catalogApi.Providers {
			if err := validateSpec(apiName, id, spec); err != nil {
				return nil, err
			}
			spec.Api = api
			spec.ProviderID = id
			out[api][id] = spec
		}
	}
	return out, nil
}

func validateSpec(api string, id string, spec ProviderSpec) error {
	switch spec.Kind {
	case KindInline:
		if spec.Adapter != nil {
			return errors.CatalogInvalid(fmt.Sprintf("inline provider %s/%s must not declare an adapter", api, id))
		}
	case KindRemote:
		if spec.DockerImage != "" {
			return errors.CatalogInvalid(fmt.Sprintf("remote provider %s/%s must not declare a docker image", api, id))
		}
		if len(spec.PipPackages) > 0 {
			return errors.CatalogInvalid(fmt.Sprintf("remote provider %s/%s must declare packages on its adapter", api, id))
		}
	default:
		return errors.CatalogInvalid(fmt.Sprintf("provider %s/%s has unknown kind `%s`", api, id, spec.Kind))
	}
	return nil
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return &Catalog{
		Apis: map[string]CatalogApi{
			"inference": {Providers: map[string]ProviderSpec{
				"meta-reference": {
					Kind:        KindInline,
					PipPackages: []string{"accelerate", "blobfile", "fairscale", "torch", "transformers"},
				},
				"remote::ollama": {
					Kind:    KindRemote,
					Adapter: &AdapterSpec{AdapterID: "ollama", PipPackages: []string{"ollama"}},
				},
				"remote::tgi": {
					Kind:    KindRemote,
					Adapter: &AdapterSpec{AdapterID: "tgi", PipPackages: []string{"huggingface_hub"}},
				},
			}},
			"safety": {Providers: map[string]ProviderSpec{
				"meta-reference": {
					Kind:        KindInline,
					PipPackages: []string{"accelerate", "codeshield", "torch", "transformers"},
				},
			}},
			"memory": {Providers: map[string]ProviderSpec{
				"meta-reference-faiss": {
					Kind:        KindInline,
					PipPackages: []string{"blobfile", "faiss-cpu", "nltk", "numpy"},
				},
				"remote::chroma": {
					Kind:    KindRemote,
					Adapter: &AdapterSpec{AdapterID: "chroma", PipPackages: []string{"chromadb-client"}},
				},
			}},
			"agentic_system": {Providers: map[string]ProviderSpec{
				"meta-reference": {
					Kind:        KindInline,
					PipPackages: []string{"codeshield", "pillow", "torch", "transformers"},
				},
			}},
			"telemetry": {Providers: map[string]ProviderSpec{
				"console": {Kind: KindInline},
			}},
		},
	}
}
