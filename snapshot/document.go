// SPDX-License-Identifier: MIT

// Package snapshot persists network.Network instances: topology plus every
// initialised attribute, as YAML, JSON or msgpack, optionally zstd-compressed.
//
// Attribute presence is all-or-nothing per collection: a value on every node
// (or edge) restores the collection, no value anywhere leaves it
// uninitialised, anything in between is ErrPartialAttribute. Document.Initialized
// names the collections that were set, which carries collections over an
// empty node or edge set.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gasnet/network"
)

// ErrPartialAttribute indicates an attribute present on some entities but not all.
var ErrPartialAttribute = errors.New("snapshot: attribute missing on some entities")

// Document is the serialised form of a network.
type Document struct {
	Nodes           []NodeRecord `json:"nodes" yaml:"nodes" msgpack:"nodes"`
	Edges           []EdgeRecord `json:"edges" yaml:"edges" msgpack:"edges"`
	CompressionCost *float64     `json:"compression_cost,omitempty" yaml:"compression_cost,omitempty" msgpack:"compression_cost,omitempty"`
	// Initialized names the per-entity collections that were set, so a
	// collection over an empty node or edge set survives a round trip.
	Initialized []string `json:"initialized,omitempty" yaml:"initialized,omitempty" msgpack:"initialized,omitempty"`
}

// NodeRecord is one node and its per-node attributes.
type NodeRecord struct {
	ID            network.NodeID `json:"id" yaml:"id" msgpack:"id"`
	MinPressure   *float64       `json:"min_pressure,omitempty" yaml:"min_pressure,omitempty" msgpack:"min_pressure,omitempty"`
	MaxPressure   *float64       `json:"max_pressure,omitempty" yaml:"max_pressure,omitempty" msgpack:"max_pressure,omitempty"`
	MinInjection  *float64       `json:"min_injection,omitempty" yaml:"min_injection,omitempty" msgpack:"min_injection,omitempty"`
	MaxInjection  *float64       `json:"max_injection,omitempty" yaml:"max_injection,omitempty" msgpack:"max_injection,omitempty"`
	ValueUnserved *float64       `json:"value_unserved,omitempty" yaml:"value_unserved,omitempty" msgpack:"value_unserved,omitempty"`
	Demand        *float64       `json:"demand,omitempty" yaml:"demand,omitempty" msgpack:"demand,omitempty"`
}

// EdgeRecord is one edge and its per-edge attributes.
// ReferenceFlow holds the value as passed to SetReferenceFlows, i.e. half
// of what ReferenceFlows returns.
type EdgeRecord struct {
	ID            network.EdgeID `json:"id" yaml:"id" msgpack:"id"`
	From          network.NodeID `json:"from" yaml:"from" msgpack:"from"`
	To            network.NodeID `json:"to" yaml:"to" msgpack:"to"`
	Compressor    bool           `json:"compressor,omitempty" yaml:"compressor,omitempty" msgpack:"compressor,omitempty"`
	Friction      *float64       `json:"friction,omitempty" yaml:"friction,omitempty" msgpack:"friction,omitempty"`
	MinRatio      *float64       `json:"min_ratio,omitempty" yaml:"min_ratio,omitempty" msgpack:"min_ratio,omitempty"`
	MaxRatio      *float64       `json:"max_ratio,omitempty" yaml:"max_ratio,omitempty" msgpack:"max_ratio,omitempty"`
	ReferenceFlow *float64       `json:"reference_flow,omitempty" yaml:"reference_flow,omitempty" msgpack:"reference_flow,omitempty"`
}

type nodeField struct {
	attr network.Attribute
	ptr  func(*NodeRecord) **float64
	get  func(*network.Network) (map[network.NodeID]float64, error)
	set  func(*network.Network, map[network.NodeID]float64) error
}

type edgeField struct {
	attr  network.Attribute
	ptr   func(*EdgeRecord) **float64
	get   func(*network.Network) (map[network.EdgeID]float64, error)
	set   func(*network.Network, map[network.EdgeID]float64) error
	scale float64 // applied on Capture to recover the value as written
}

var nodeFields = []nodeField{
	{network.MinimumPressureBounds, func(r *NodeRecord) **float64 { return &r.MinPressure },
		(*network.Network).MinimumPressureBounds, (*network.Network).SetMinimumPressureBounds},
	{network.MaximumPressureBounds, func(r *NodeRecord) **float64 { return &r.MaxPressure },
		(*network.Network).MaximumPressureBounds, (*network.Network).SetMaximumPressureBounds},
	{network.MinimumNodalInjections, func(r *NodeRecord) **float64 { return &r.MinInjection },
		(*network.Network).MinimumNodalInjections, (*network.Network).SetMinimumNodalInjections},
	{network.MaximumNodalInjections, func(r *NodeRecord) **float64 { return &r.MaxInjection },
		(*network.Network).MaximumNodalInjections, (*network.Network).SetMaximumNodalInjections},
	{network.ValueUnservedDemand, func(r *NodeRecord) **float64 { return &r.ValueUnserved },
		(*network.Network).ValueUnservedDemand, (*network.Network).SetValueUnservedDemand},
	{network.NodalDemands, func(r *NodeRecord) **float64 { return &r.Demand },
		(*network.Network).NodalDemands, (*network.Network).SetNodalDemands},
}

var edgeFields = []edgeField{
	{network.FrictionCoefficients, func(r *EdgeRecord) **float64 { return &r.Friction },
		(*network.Network).FrictionCoefficients, (*network.Network).SetFrictionCoefficients, 1},
	{network.MinimumPressureRatio, func(r *EdgeRecord) **float64 { return &r.MinRatio },
		(*network.Network).MinimumPressureRatio, (*network.Network).SetMinimumPressureRatio, 1},
	{network.MaximumPressureRatio, func(r *EdgeRecord) **float64 { return &r.MaxRatio },
		(*network.Network).MaximumPressureRatio, (*network.Network).SetMaximumPressureRatio, 1},
	{network.ReferenceFlows, func(r *EdgeRecord) **float64 { return &r.ReferenceFlow },
		(*network.Network).ReferenceFlows, (*network.Network).SetReferenceFlows, 0.5},
}

func ptr(v float64) *float64 { return &v }

// Capture returns the document of net. Uninitialised collections are omitted.
func Capture(net *network.Network) Document {
	var doc Document

	nodes := net.Nodes()
	doc.Nodes = make([]NodeRecord, len(nodes))
	for i, id := range nodes {
		doc.Nodes[i].ID = id
	}
	for _, f := range nodeFields {
		values, err := f.get(net)
		if err != nil {
			continue
		}
		doc.Initialized = append(doc.Initialized, f.attr.String())
		for i := range doc.Nodes {
			*f.ptr(&doc.Nodes[i]) = ptr(values[doc.Nodes[i].ID])
		}
	}

	edges := net.Edges()
	doc.Edges = make([]EdgeRecord, len(edges))
	for j, e := range edges {
		doc.Edges[j] = EdgeRecord{ID: e.ID, From: e.From, To: e.To, Compressor: net.IsCompressor(e.ID)}
	}
	for _, f := range edgeFields {
		values, err := f.get(net)
		if err != nil {
			continue
		}
		doc.Initialized = append(doc.Initialized, f.attr.String())
		for j := range doc.Edges {
			*f.ptr(&doc.Edges[j]) = ptr(f.scale * values[doc.Edges[j].ID])
		}
	}

	if cc, err := net.CompressionCost(); err == nil {
		doc.CompressionCost = ptr(cc)
	}

	return doc
}

// Restore builds a network from doc and writes every attribute present on
// all of its entities. Topology errors match network.ErrConstruction,
// attribute errors match ErrPartialAttribute or network.ErrValidation.
func Restore(doc Document) (*network.Network, error) {
	nodes := make([]network.NodeID, len(doc.Nodes))
	for i, r := range doc.Nodes {
		nodes[i] = r.ID
	}
	edges := make([]network.Edge, len(doc.Edges))
	var compressors []network.Edge
	for j, r := range doc.Edges {
		edges[j] = network.Edge{ID: r.ID, From: r.From, To: r.To}
		if r.Compressor {
			compressors = append(compressors, edges[j])
		}
	}

	net, err := network.New(nodes, edges, compressors)
	if err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	listed := make(map[string]bool, len(doc.Initialized))
	for _, name := range doc.Initialized {
		listed[name] = true
	}

	for _, f := range nodeFields {
		values := make(map[network.NodeID]float64, len(doc.Nodes))
		for i := range doc.Nodes {
			if p := *f.ptr(&doc.Nodes[i]); p != nil {
				values[doc.Nodes[i].ID] = *p
			}
		}
		if err := restoreField(f.attr, len(values), len(doc.Nodes), listed[f.attr.String()], func() error { return f.set(net, values) }); err != nil {
			return nil, err
		}
	}
	for _, f := range edgeFields {
		values := make(map[network.EdgeID]float64, len(doc.Edges))
		for j := range doc.Edges {
			if p := *f.ptr(&doc.Edges[j]); p != nil {
				values[doc.Edges[j].ID] = *p
			}
		}
		if err := restoreField(f.attr, len(values), len(doc.Edges), listed[f.attr.String()], func() error { return f.set(net, values) }); err != nil {
			return nil, err
		}
	}
	if doc.CompressionCost != nil {
		if err := net.SetCompressionCost(*doc.CompressionCost); err != nil {
			return nil, fmt.Errorf("Restore: %w", err)
		}
	}

	return net, nil
}

// restoreField writes a collection when present on all entities. Over an
// empty domain (no nodes or no edges) only a listed collection is written.
// A listed collection with no values on a non-empty domain is partial.
func restoreField(attr network.Attribute, present, total int, listed bool, set func() error) error {
	switch {
	case present == 0 && !listed:
		return nil
	case present != total:
		return fmt.Errorf("Restore: %s: %d of %d entities: %w", attr, present, total, ErrPartialAttribute)
	}
	if err := set(); err != nil {
		return fmt.Errorf("Restore: %w", err)
	}

	return nil
}
