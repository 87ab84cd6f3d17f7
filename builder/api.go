// SPDX-License-Identifier: MIT
// Package: gasnet/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in
//     order over one draft, then validates through network.New.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gasnet/network"
)

// Constructor appends a deterministic topology to the draft using the
// resolved builderConfig. Constructors validate parameters first and
// return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// Build resolves the builder configuration from opts, applies all
// constructors in order and returns the validated network. With
// WithProfile, every attribute is initialised as well.
//
// Errors:
//   - constructor sentinels (ErrTooFewVertices, ...) wrapped as "Build: %w";
//   - network.ErrConstruction kinds from network.New;
//   - ErrConstructFailed for a nil constructor or a rejected profile.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	cfg := newBuilderConfig(opts...)
	d := newDraft(cfg)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	net, err := network.New(d.nodes, d.edges, d.compressors)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.profile != nil {
		if err := cfg.profile.apply(net); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return net, nil
}
