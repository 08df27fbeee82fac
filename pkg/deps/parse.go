package deps

import (
	"fmt"
	"strings"

	"github.com/stackpack/stackpack/pkg/registry"
)

// ParseDependencies parses a comma-separated list of api=provider pairs into
// the auxiliary provider mapping, resolving each provider id against the
// registry. Blank entries are skipped and whitespace around names is trimmed.
// Processing stops at the first invalid entry.
func ParseDependencies(spec string, reg registry.Registry) (*OrderedSpecs, error) {
	out := NewOrderedSpecs()
	for _, dep := range strings.Split(spec, ",") {
		dep = strings.TrimSpace(dep)
		if dep == "" {
			continue
		}

		parts := strings.Split(dep, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid dependency `%s`: expected api=provider", dep)
		}

		api, err := registry.ParseApi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}

		providerID := strings.TrimSpace(parts[1])
		providerSpec, err := registry.LookupProvider(reg, api, providerID)
		if err != nil {
			return nil, err
		}
		out.Set(api, providerSpec)
	}
	return out, nil
}
