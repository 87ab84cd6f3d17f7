// SPDX-License-Identifier: MIT

// Package network defines Network, the validated data model of a gas
// transmission network: an ordered set of integer node ids, an ordered set of
// directed edges (pipes and compressors) and the physical attributes that
// model builders read to assemble pressure-flow constraints.
//
// Topology is fixed at construction and safe for concurrent reads. Attribute
// collections start uninitialised; every read before the first write returns
// ErrUninitialized and every write is validated as a whole (ErrValidation)
// before any value is replaced. A second write replaces all values.
//
// Attribute collections:
//
//	per node  : MinimumPressureBounds, MaximumPressureBounds,
//	            MinimumNodalInjections, MaximumNodalInjections,
//	            ValueUnservedDemand, NodalDemands
//	per edge  : FrictionCoefficients, MinimumPressureRatio,
//	            MaximumPressureRatio, ReferenceFlows (stored as 2·v)
//	scalar    : CompressionCost (finite, ≥ 0)
//
// Derived views:
//
//	Pipes()           edges minus compressors, edge order preserved
//	IncidenceMatrix() |N|×|E| dense, +1 at the tail row, −1 at the head row
//	Components()      weakly connected node groups
//
// Errors:
//
//	ErrConstruction  – umbrella kind for every New failure
//	ErrBadNodes      – duplicate node ids
//	ErrBadEdges      – duplicate edge or compressor ids
//	ErrDanglingEdge  – endpoint or compressor not present in the topology
//	ErrUninitialized – attribute read before its first write
//	ErrValidation    – rejected attribute write (size, keys, value)
package network
