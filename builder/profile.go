// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gasnet/network"
)

// Profile holds uniform attribute values for a generated network.
// Supply is the maximum injection of the first node and Demand the demand of
// the last node; every other node has zero injection window and demand.
type Profile struct {
	MinPressure     float64 `json:"min_pressure" yaml:"min_pressure"`
	MaxPressure     float64 `json:"max_pressure" yaml:"max_pressure"`
	Supply          float64 `json:"supply" yaml:"supply"`
	Demand          float64 `json:"demand" yaml:"demand"`
	ValueUnserved   float64 `json:"value_unserved" yaml:"value_unserved"`
	Friction        float64 `json:"friction" yaml:"friction"`
	MinRatio        float64 `json:"min_ratio" yaml:"min_ratio"`
	MaxRatio        float64 `json:"max_ratio" yaml:"max_ratio"`
	ReferenceFlow   float64 `json:"reference_flow" yaml:"reference_flow"`
	CompressionCost float64 `json:"compression_cost" yaml:"compression_cost"`
}

// DefaultProfile returns a profile under which a generated network yields
// a feasible program: one source, one sink, loose pressure bounds.
func DefaultProfile() Profile {
	return Profile{
		MinPressure:     1,
		MaxPressure:     100,
		Supply:          100,
		Demand:          10,
		ValueUnserved:   1000,
		Friction:        0.1,
		MinRatio:        1,
		MaxRatio:        2,
		ReferenceFlow:   1,
		CompressionCost: 1,
	}
}

func (p Profile) values() []float64 {
	return []float64{
		p.MinPressure, p.MaxPressure, p.Supply, p.Demand, p.ValueUnserved,
		p.Friction, p.MinRatio, p.MaxRatio, p.ReferenceFlow, p.CompressionCost,
	}
}

// apply writes every attribute of net. The network reports any rejected value.
func (p Profile) apply(net *network.Network) error {
	nodes := net.Nodes()
	edges := net.Edges()

	uniformN := func(v float64) map[network.NodeID]float64 {
		m := make(map[network.NodeID]float64, len(nodes))
		for _, id := range nodes {
			m[id] = v
		}
		return m
	}
	uniformE := func(v float64) map[network.EdgeID]float64 {
		m := make(map[network.EdgeID]float64, len(edges))
		for _, e := range edges {
			m[e.ID] = v
		}
		return m
	}

	supply := uniformN(0)
	demand := uniformN(0)
	if len(nodes) > 0 {
		supply[nodes[0]] = p.Supply
		demand[nodes[len(nodes)-1]] = p.Demand
	}

	writes := []error{
		net.SetMinimumPressureBounds(uniformN(p.MinPressure)),
		net.SetMaximumPressureBounds(uniformN(p.MaxPressure)),
		net.SetMinimumNodalInjections(uniformN(0)),
		net.SetMaximumNodalInjections(supply),
		net.SetValueUnservedDemand(uniformN(p.ValueUnserved)),
		net.SetNodalDemands(demand),
		net.SetFrictionCoefficients(uniformE(p.Friction)),
		net.SetMinimumPressureRatio(uniformE(p.MinRatio)),
		net.SetMaximumPressureRatio(uniformE(p.MaxRatio)),
		net.SetReferenceFlows(uniformE(p.ReferenceFlow)),
		net.SetCompressionCost(p.CompressionCost),
	}
	for _, err := range writes {
		if err != nil {
			return fmt.Errorf("profile: %w: %w", ErrConstructFailed, err)
		}
	}

	return nil
}
