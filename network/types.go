// SPDX-License-Identifier: MIT

package network

import "fmt"

// NodeID identifies a node (injection or offtake point). Zero is a valid id.
type NodeID int

// EdgeID identifies an edge (pipe or compressor segment).
type EdgeID int

// Edge is a directed segment From → To. Orientation fixes the incidence sign:
// +1 at From (tail), −1 at To (head).
type Edge struct {
	ID   EdgeID `json:"id" yaml:"id" msgpack:"id"`
	From NodeID `json:"from" yaml:"from" msgpack:"from"`
	To   NodeID `json:"to" yaml:"to" msgpack:"to"`
}

// String renders e as "id:(from,to)".
func (e Edge) String() string {
	return fmt.Sprintf("%d:(%d,%d)", e.ID, e.From, e.To)
}

// Attribute names one of the network's attribute collections.
type Attribute int

// Attribute collections, in the order they are reported by Attributes.
const (
	MinimumPressureBounds Attribute = iota
	MaximumPressureBounds
	MinimumNodalInjections
	MaximumNodalInjections
	ValueUnservedDemand
	NodalDemands
	FrictionCoefficients
	MinimumPressureRatio
	MaximumPressureRatio
	ReferenceFlows
	CompressionCost
)

var attributeNames = [...]string{
	MinimumPressureBounds:  "minimum_pressure_bounds",
	MaximumPressureBounds:  "maximum_pressure_bounds",
	MinimumNodalInjections: "minimum_nodal_injections",
	MaximumNodalInjections: "maximum_nodal_injections",
	ValueUnservedDemand:    "value_unserved_demand",
	NodalDemands:           "nodal_demands",
	FrictionCoefficients:   "friction_coefficients",
	MinimumPressureRatio:   "minimum_pressure_ratio",
	MaximumPressureRatio:   "maximum_pressure_ratio",
	ReferenceFlows:         "reference_flows",
	CompressionCost:        "compression_cost",
}

// String returns the snake_case attribute name used in logs and snapshots.
func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return fmt.Sprintf("attribute(%d)", int(a))
	}

	return attributeNames[a]
}

// PerNode reports whether a is keyed by node id.
func (a Attribute) PerNode() bool { return a >= MinimumPressureBounds && a <= NodalDemands }

// PerEdge reports whether a is keyed by edge id.
func (a Attribute) PerEdge() bool { return a >= FrictionCoefficients && a <= ReferenceFlows }

// Attributes lists every attribute collection in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, 0, len(attributeNames))
	for a := MinimumPressureBounds; a <= CompressionCost; a++ {
		out = append(out, a)
	}

	return out
}
