// Package deps resolves the dependency set of a build: the root provider's
// requirements merged with those of its auxiliary providers.
package deps

import (
	"github.com/stackpack/stackpack/pkg/errors"
	"github.com/stackpack/stackpack/pkg/registry"
)

// DependencySet is the merged result: the pip packages to install, in order,
// and at most one container base image across the whole merge.
type DependencySet struct {
	PipPackages []string
	DockerImage string
}

// OrderedSpecs maps auxiliary APIs to provider specs while preserving the
// order the dependencies were listed on the command line. Go maps do not keep
// insertion order, and the merger's package ordering depends on it.
type OrderedSpecs struct {
	order []registry.Api
	specs map[registry.Api]registry.ProviderSpec
}

func NewOrderedSpecs() *OrderedSpecs {
	return &OrderedSpecs{specs: map[registry.Api]registry.ProviderSpec{}}
}

// Set adds or replaces the spec for an API. An API listed twice keeps its
// original position.
func (o *OrderedSpecs) Set(api registry.Api, spec registry.ProviderSpec) {
	if _, ok := o.specs[api]; !ok {
		o.order = append(o.order, api)
	}
	o.specs[api] = spec
}

func (o *OrderedSpecs) Get(api registry.Api) (registry.ProviderSpec, bool) {
	spec, ok := o.specs[api]
	return spec, ok
}

// Apis returns the APIs in listing order.
func (o *OrderedSpecs) Apis() []registry.Api {
	return o.order
}

func (o *OrderedSpecs) Len() int {
	return len(o.order)
}

// Merge combines the root provider's requirements with each auxiliary's, in
// listing order. Only the root may contribute a container base image; a merge
// where both the root and an auxiliary declare one fails. Package lists are
// concatenated as declared, duplicates and all. Pure function, no side
// effects.
func Merge(root registry.ProviderSpec, auxiliaries *OrderedSpecs) (DependencySet, error) {
	pipPackages, dockerImage := root.Requirements()

	packages := append([]string{}, pipPackages...)
	for _, api := range auxiliaries.Apis() {
		spec, _ := auxiliaries.Get(api)
		depPackages, depImage := spec.Requirements()
		if dockerImage != "" && depImage != "" {
			return DependencySet{}, errors.ConflictingImage("only the root provider may declare a container base image")
		}
		packages = append(packages, depPackages...)
	}

	return DependencySet{PipPackages: packages, DockerImage: dockerImage}, nil
}
