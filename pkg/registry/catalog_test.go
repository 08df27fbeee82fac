package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackpack/stackpack/pkg/errors"
)

func TestBuiltinCatalog(t *testing.T) {
	reg, err := New(Builtin())
	require.NoError(t, err)

	providers := reg.ApiProviders()
	for _, api := range StackApis() {
		require.Contains(t, providers, api)
	}

	spec, err := LookupProvider(reg, ApiInference, "remote::ollama")
	require.NoError(t, err)
	require.Equal(t, KindRemote, spec.Kind)
	require.Equal(t, ApiInference, spec.Api)
	require.Equal(t, "remote::ollama", spec.ProviderID)
	require.NotNil(t, spec.Adapter)
	require.Equal(t, []string{"ollama"}, spec.Adapter.PipPackages)
}

func TestLookupProviderUnknown(t *testing.T) {
	reg, err := New(Builtin())
	require.NoError(t, err)

	_, err = LookupProvider(reg, ApiSafety, "does-not-exist")
	require.Error(t, err)
	require.True(t, errors.IsUnknownProvider(err))
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	contents := `
apis:
  inference:
    providers:
      my-provider:
        kind: inline
        pip_packages:
          - vllm
        docker_image: vllm/vllm-openai:latest
      remote::together:
        kind: remote
        adapter:
          adapter_id: together
          pip_packages:
            - together
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	reg, err := New(catalog)
	require.NoError(t, err)

	spec, err := LookupProvider(reg, ApiInference, "my-provider")
	require.NoError(t, err)
	require.Equal(t, KindInline, spec.Kind)
	require.Equal(t, []string{"vllm"}, spec.PipPackages)
	require.Equal(t, "vllm/vllm-openai:latest", spec.DockerImage)

	spec, err = LookupProvider(reg, ApiInference, "remote::together")
	require.NoError(t, err)
	require.Equal(t, KindRemote, spec.Kind)
	require.Equal(t, "together", spec.Adapter.AdapterID)
}

func TestLoadCatalogNotYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
	require.True(t, errors.IsCatalogInvalid(err))
}

func TestCatalogMergeOverridesBuiltin(t *testing.T) {
	catalog := Builtin()
	catalog.merge(&Catalog{
		Apis: map[string]CatalogApi{
			"inference": {Providers: map[string]ProviderSpec{
				"meta-reference": {Kind: KindInline, PipPackages: []string{"torch==2.3.0"}},
				"extra":          {Kind: KindInline, PipPackages: []string{"extra-pkg"}},
			}},
		},
	})

	reg, err := New(catalog)
	require.NoError(t, err)

	spec, err := LookupProvider(reg, ApiInference, "meta-reference")
	require.NoError(t, err)
	require.Equal(t, []string{"torch==2.3.0"}, spec.PipPackages)

	_, err = LookupProvider(reg, ApiInference, "extra")
	require.NoError(t, err)

	// untouched APIs survive the overlay
	_, err = LookupProvider(reg, ApiSafety, "meta-reference")
	require.NoError(t, err)
}

func TestCatalogValidation(t *testing.T) {
	testCases := []struct {
		name    string
		catalog *Catalog
	}{
		{
			name: "UnknownAPI",
			catalog: &Catalog{Apis: map[string]CatalogApi{
				"training": {Providers: map[string]ProviderSpec{
					"p": {Kind: KindInline},
				}},
			}},
		},
		{
			name: "UnknownKind",
			catalog: &Catalog{Apis: map[string]CatalogApi{
				"inference": {Providers: map[string]ProviderSpec{
					"p": {Kind: "builtin"},
				}},
			}},
		},
		{
			name: "InlineWithAdapter",
			catalog: &Catalog{Apis: map[string]CatalogApi{
				"inference": {Providers: map[string]ProviderSpec{
					"p": {Kind: KindInline, Adapter: &AdapterSpec{AdapterID: "x"}},
				}},
			}},
		},
		{
			name: "RemoteWithImage",
			catalog: &Catalog{Apis: map[string]CatalogApi{
				"inference": {Providers: map[string]ProviderSpec{
					"p": {Kind: KindRemote, DockerImage: "python:3.10-slim"},
				}},
			}},
		},
		{
			name: "RemoteWithOwnPackages",
			catalog: &Catalog{Apis: map[string]CatalogApi{
				"inference": {Providers: map[string]ProviderSpec{
					"p": {Kind: KindRemote, PipPackages: []string{"requests"}},
				}},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.catalog)
			require.Error(t, err)
			require.True(t, errors.IsCatalogInvalid(err))
		})
	}
}
