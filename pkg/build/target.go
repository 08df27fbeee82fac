// Package build constructs build targets, persists their descriptors and
// hands them to the external build scripts.
package build

import (
	"fmt"
	"strings"
	"time"

	"github.com/stackpack/stackpack/pkg/deps"
	"github.com/stackpack/stackpack/pkg/registry"
)

// Kind selects what the build produces.
type Kind string

const (
	KindContainer Kind = "container"
	KindVenv      Kind = "isolated-environment"
)

// Kinds returns the accepted --type values.
func Kinds() []Kind {
	return []Kind{KindContainer, KindVenv}
}

// ParseKind validates a build kind from user input.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid build type `%s` (must be one of: container, isolated-environment)", s)
}

// Options carries everything needed to construct a target. Registry, Names
// and Now are injected so the constructor has no hidden global state.
type Options struct {
	Api          registry.Api
	ProviderID   string
	Kind         Kind
	Dependencies string // raw --dependencies value, may be empty
	Name         string // optional, generated when empty
	Registry     registry.Registry
	Names        NameSource
	Now          func() time.Time
}

// Target is one resolved build invocation. Constructed once, written to a
// descriptor file, then handed to the invoker; never mutated afterwards.
type Target struct {
	Api         registry.Api
	Kind        Kind
	Name        string
	PackageName string
	Deps        deps.DependencySet
	Descriptor  Descriptor
}

// NewTarget resolves the provider and its auxiliary dependencies against the
// registry and synthesizes the build descriptor. No files are touched here;
// any error leaves the filesystem alone.
func NewTarget(opts Options) (*Target, error) {
	spec, err := registry.LookupProvider(opts.Registry, opts.Api, opts.ProviderID)
	if err != nil {
		return nil, err
	}

	auxiliaries, err := deps.ParseDependencies(opts.Dependencies, opts.Registry)
	if err != nil {
		return nil, err
	}

	set, err := deps.Merge(spec, auxiliaries)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		names := opts.Names
		if names == nil {
			names = DefaultNameSource()
		}
		name = names()
	}

	packageName := PackageName(opts.Kind, opts.ProviderID, name)

	providers := &ProviderMap{}
	providers.Set(string(opts.Api), ProviderEntry{ProviderID: opts.ProviderID})
	for _, api := range auxiliaries.Apis() {
		auxSpec, _ := auxiliaries.Get(api)
		providers.Set(string(api), ProviderEntry{ProviderID: auxSpec.ProviderID})
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	descriptor := Descriptor{
		BuiltAt:     now(),
		PackageName: packageName,
		Providers:   providers,
	}
	switch opts.Kind {
	case KindContainer:
		descriptor.DockerImage = &packageName
	case KindVenv:
		descriptor.VirtualEnv = &packageName
	}

	return &Target{
		Api:         opts.Api,
		Kind:        opts.Kind,
		Name:        name,
		PackageName: packageName,
		Deps:        set,
		Descriptor:  descriptor,
	}, nil
}

// PackageName derives the image or environment name for a build. Provider ids
// may contain `::` namespace separators, which are illegal in image and
// filesystem names and get flattened to `-`.
func PackageName(kind Kind, providerID string, name string) string {
	prefix := "env-"
	if kind == KindContainer {
		prefix = "image-"
	}
	return strings.ReplaceAll(prefix+providerID+"-"+name, "::", "-")
}
