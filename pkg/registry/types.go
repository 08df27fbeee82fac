// Package registry defines the stack's APIs and the provider specifications
// registered for each of them.
package registry

import (
	"github.com/stackpack/stackpack/pkg/errors"
)

// Api is a named capability surface of the stack (e.g. inference, memory).
type Api string

const (
	ApiInference     Api = "inference"
	ApiSafety        Api = "safety"
	ApiMemory        Api = "memory"
	ApiAgenticSystem Api = "agentic_system"
	ApiTelemetry     Api = "telemetry"
)

// StackApis returns every API of the stack, in a fixed order.
func StackApis() []Api {
	return []Api{ApiInference, ApiSafety, ApiMemory, ApiAgenticSystem, ApiTelemetry}
}

// ParseApi validates an API name from user input.
func ParseApi(s string) (Api, error) {
	for _, api := range StackApis() {
		if string(api) == s {
			return api, nil
		}
	}
	return "", errors.UnknownAPI(s)
}

// ProviderKind tags the two provider spec variants.
type ProviderKind string

const (
	// KindInline providers declare their build requirements directly.
	KindInline ProviderKind = "inline"
	// KindRemote providers delegate to a remote service, optionally through a
	// local adapter that carries its own package requirements.
	KindRemote ProviderKind = "remote"
)

// AdapterSpec is the client-side shim a remote provider installs locally.
type AdapterSpec struct {
	AdapterID   string   `yaml:"adapter_id"`
	PipPackages []string `yaml:"pip_packages,omitempty"`
}

// ProviderSpec identifies one implementation of one API. Immutable once
// loaded from a catalog.
type ProviderSpec struct {
	Kind        ProviderKind `yaml:"kind"`
	Api         Api          `yaml:"-"`
	ProviderID  string       `yaml:"-"`
	PipPackages []string     `yaml:"pip_packages,omitempty"`
	DockerImage string       `yaml:"docker_image,omitempty"`
	Adapter     *AdapterSpec `yaml:"adapter,omitempty"`
}

// Requirements extracts the build requirements of a spec. Inline providers
// contribute their own packages and optional base image. Remote providers
// contribute their adapter's packages, if any, and never an image.
func (s ProviderSpec) Requirements() (pipPackages []string, dockerImage string) {
	switch s.Kind {
	case KindInline:
		return s.PipPackages, s.DockerImage
	case KindRemote:
		if s.Adapter != nil {
			return s.Adapter.PipPackages, ""
		}
		return nil, ""
	}
	return nil, ""
}
