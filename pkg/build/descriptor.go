package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/stackpack/stackpack/pkg/registry"
)

// ProviderEntry is the per-API record in the descriptor's provider mapping.
type ProviderEntry struct {
	ProviderID string `yaml:"provider_id"`
}

// ProviderMap is the descriptor's provider mapping, serialized in resolution
// order: the root API first, then auxiliaries as listed on the command line.
// A plain map would come out alphabetically sorted.
type ProviderMap struct {
	apis    []string
	entries map[string]ProviderEntry
}

// Set adds or replaces the entry for an API, keeping its original position.
func (m *ProviderMap) Set(api string, entry ProviderEntry) {
	if m.entries == nil {
		m.entries = map[string]ProviderEntry{}
	}
	if _, ok := m.entries[api]; !ok {
		m.apis = append(m.apis, api)
	}
	m.entries[api] = entry
}

func (m *ProviderMap) Get(api string) (ProviderEntry, bool) {
	entry, ok := m.entries[api]
	return entry, ok
}

// Apis returns the API names in emission order.
func (m *ProviderMap) Apis() []string {
	return m.apis
}

func (m *ProviderMap) MarshalYAML() (interface{}, error) {
	out := yaml.MapSlice{}
	for _, api := range m.apis {
		out = append(out, yaml.MapItem{Key: api, Value: m.entries[api]})
	}
	return out, nil
}

func (m *ProviderMap) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw yaml.MapSlice
	if err := unmarshal(&raw); err != nil {
		return err
	}
	for _, item := range raw {
		api, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("provider mapping has non-string API key %v", item.Key)
		}
		entry := ProviderEntry{}
		if fields, ok := item.Value.(yaml.MapSlice); ok {
			for _, field := range fields {
				if key, _ := field.Key.(string); key == "provider_id" {
					if id, ok := field.Value.(string); ok {
						entry.ProviderID = id
					}
				}
			}
		}
		m.Set(api, entry)
	}
	return nil
}

// Descriptor is the on-disk form of a build target. Field order is fixed for
// reproducible, diffable output, and no field is omitted: the build kind that
// does not apply is written as null.
type Descriptor struct {
	BuiltAt     time.Time    `yaml:"built_at"`
	PackageName string       `yaml:"package_name"`
	DockerImage *string      `yaml:"docker_image"`
	VirtualEnv  *string      `yaml:"virtual_env"`
	Providers   *ProviderMap `yaml:"providers"`
}

// DescriptorPath returns where the descriptor for a package lives under the
// builds base directory.
func DescriptorPath(buildsDir string, api registry.Api, packageName string) string {
	return filepath.Join(buildsDir, string(api), packageName+".yaml")
}

// Write serializes the target's descriptor to path, creating parent
// directories as needed. An existing descriptor with the same name is
// overwritten.
func (t *Target) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	contents, err := yaml.Marshal(t.Descriptor)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("failed to write build descriptor %s: %w", path, err)
	}
	return nil
}
