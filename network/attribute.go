// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"maps"
	"math"
)

// attribute is one per-entity collection. values == nil means "not yet
// written"; a successful write always stores a non-nil map, even for an
// empty domain.
type attribute[K comparable] struct {
	kind   Attribute
	values map[K]float64
}

// get returns a copy of the stored values or ErrUninitialized.
func (a *attribute[K]) get() (map[K]float64, error) {
	if a.values == nil {
		return nil, fmt.Errorf("%s: %w", a.kind, ErrUninitialized)
	}

	return maps.Clone(a.values), nil
}

// set validates in against domain as a whole and only then replaces the
// stored values. transform, when non-nil, is applied to each stored value.
//
// Rejected (ErrValidation): nil map, len(in) != len(domain), a key outside
// domain, a NaN value.
func (a *attribute[K]) set(in map[K]float64, domain map[K]int, transform func(float64) float64) error {
	if in == nil {
		return fmt.Errorf("%s: nil mapping: %w", a.kind, ErrValidation)
	}
	if len(in) != len(domain) {
		return fmt.Errorf("%s: got %d values, want %d: %w", a.kind, len(in), len(domain), ErrValidation)
	}

	next := make(map[K]float64, len(in))
	for k, v := range in {
		if _, ok := domain[k]; !ok {
			return fmt.Errorf("%s: unknown key %v: %w", a.kind, k, ErrValidation)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("%s: key %v is NaN: %w", a.kind, k, ErrValidation)
		}
		if transform != nil {
			v = transform(v)
		}
		next[k] = v
	}
	a.values = next

	return nil
}

func (a *attribute[K]) initialized() bool { return a.values != nil }

// scalar is a single network-wide value with the same lazy-init contract.
type scalar struct {
	kind  Attribute
	value float64
	ok    bool
}

func (s *scalar) get() (float64, error) {
	if !s.ok {
		return 0, fmt.Errorf("%s: %w", s.kind, ErrUninitialized)
	}

	return s.value, nil
}

// set accepts finite, non-negative values.
func (s *scalar) set(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %v is not a finite number: %w", s.kind, v, ErrValidation)
	}
	if v < 0 {
		return fmt.Errorf("%s: %v is negative: %w", s.kind, v, ErrValidation)
	}
	s.value, s.ok = v, true

	return nil
}
