// SPDX-License-Identifier: MIT
// File: attributes.go
// Role: getter/setter pairs for the physical attribute collections.
// Contract (all collections):
//   - Get before the first Set → ErrUninitialized.
//   - Set validates the whole input first; on ErrValidation nothing changes.
//   - Set replaces every value; there is no merge with a previous write.
//   - Get returns a copy; mutating it does not affect the network.
// Concurrency:
//   - Gets take mu.RLock, Sets take mu.Lock.

package network

// refFlowScale is applied to reference flows on write; reads return the scaled value.
const refFlowScale = 2.0

func (n *Network) initAttributes() {
	n.pMin.kind = MinimumPressureBounds
	n.pMax.kind = MaximumPressureBounds
	n.sMin.kind = MinimumNodalInjections
	n.sMax.kind = MaximumNodalInjections
	n.voll.kind = ValueUnservedDemand
	n.demand.kind = NodalDemands
	n.friction.kind = FrictionCoefficients
	n.alphaMin.kind = MinimumPressureRatio
	n.alphaMax.kind = MaximumPressureRatio
	n.refFlows.kind = ReferenceFlows
	n.compressionCost.kind = CompressionCost
}

func (n *Network) getNode(a *attribute[NodeID]) (map[NodeID]float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return a.get()
}

func (n *Network) setNode(a *attribute[NodeID], in map[NodeID]float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return a.set(in, n.nodeIndex, nil)
}

func (n *Network) getEdge(a *attribute[EdgeID]) (map[EdgeID]float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return a.get()
}

func (n *Network) setEdge(a *attribute[EdgeID], in map[EdgeID]float64, transform func(float64) float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return a.set(in, n.edgeIndex, transform)
}

// --- per-node collections ---------------------------------------------------

// MinimumPressureBounds returns the lower pressure bound of every node.
func (n *Network) MinimumPressureBounds() (map[NodeID]float64, error) { return n.getNode(&n.pMin) }

// SetMinimumPressureBounds replaces the lower pressure bounds; one value per node.
func (n *Network) SetMinimumPressureBounds(v map[NodeID]float64) error {
	return n.setNode(&n.pMin, v)
}

// MaximumPressureBounds returns the upper pressure bound of every node.
func (n *Network) MaximumPressureBounds() (map[NodeID]float64, error) { return n.getNode(&n.pMax) }

// SetMaximumPressureBounds replaces the upper pressure bounds; one value per node.
func (n *Network) SetMaximumPressureBounds(v map[NodeID]float64) error {
	return n.setNode(&n.pMax, v)
}

// MinimumNodalInjections returns the lower injection bound of every node.
func (n *Network) MinimumNodalInjections() (map[NodeID]float64, error) { return n.getNode(&n.sMin) }

// SetMinimumNodalInjections replaces the lower injection bounds; one value per node.
func (n *Network) SetMinimumNodalInjections(v map[NodeID]float64) error {
	return n.setNode(&n.sMin, v)
}

// MaximumNodalInjections returns the upper injection bound of every node.
func (n *Network) MaximumNodalInjections() (map[NodeID]float64, error) { return n.getNode(&n.sMax) }

// SetMaximumNodalInjections replaces the upper injection bounds; one value per node.
func (n *Network) SetMaximumNodalInjections(v map[NodeID]float64) error {
	return n.setNode(&n.sMax, v)
}

// ValueUnservedDemand returns the value of lost load of every node.
func (n *Network) ValueUnservedDemand() (map[NodeID]float64, error) { return n.getNode(&n.voll) }

// SetValueUnservedDemand replaces the value of lost load; one value per node.
func (n *Network) SetValueUnservedDemand(v map[NodeID]float64) error {
	return n.setNode(&n.voll, v)
}

// NodalDemands returns the demand of every node.
func (n *Network) NodalDemands() (map[NodeID]float64, error) { return n.getNode(&n.demand) }

// SetNodalDemands replaces the nodal demands; one value per node.
func (n *Network) SetNodalDemands(v map[NodeID]float64) error {
	return n.setNode(&n.demand, v)
}

// --- per-edge collections ---------------------------------------------------

// FrictionCoefficients returns the friction coefficient of every edge.
func (n *Network) FrictionCoefficients() (map[EdgeID]float64, error) {
	return n.getEdge(&n.friction)
}

// SetFrictionCoefficients replaces the friction coefficients; one value per edge.
func (n *Network) SetFrictionCoefficients(v map[EdgeID]float64) error {
	return n.setEdge(&n.friction, v, nil)
}

// MinimumPressureRatio returns the lower pressure ratio of every edge.
func (n *Network) MinimumPressureRatio() (map[EdgeID]float64, error) {
	return n.getEdge(&n.alphaMin)
}

// SetMinimumPressureRatio replaces the lower pressure ratios; one value per edge.
func (n *Network) SetMinimumPressureRatio(v map[EdgeID]float64) error {
	return n.setEdge(&n.alphaMin, v, nil)
}

// MaximumPressureRatio returns the upper pressure ratio of every edge.
func (n *Network) MaximumPressureRatio() (map[EdgeID]float64, error) {
	return n.getEdge(&n.alphaMax)
}

// SetMaximumPressureRatio replaces the upper pressure ratios; one value per edge.
func (n *Network) SetMaximumPressureRatio(v map[EdgeID]float64) error {
	return n.setEdge(&n.alphaMax, v, nil)
}

// ReferenceFlows returns the stored reference flows, i.e. twice the values
// last passed to SetReferenceFlows.
func (n *Network) ReferenceFlows() (map[EdgeID]float64, error) {
	return n.getEdge(&n.refFlows)
}

// SetReferenceFlows stores 2·v for every edge. The factor is part of the data
// model's units and is not undone on read.
func (n *Network) SetReferenceFlows(v map[EdgeID]float64) error {
	return n.setEdge(&n.refFlows, v, func(x float64) float64 { return refFlowScale * x })
}

// --- scalar -----------------------------------------------------------------

// CompressionCost returns the cost shared by every compressor edge.
func (n *Network) CompressionCost() (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.compressionCost.get()
}

// SetCompressionCost replaces the compression cost. v must be finite and ≥ 0.
func (n *Network) SetCompressionCost(v float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.compressionCost.set(v)
}

// --- status -----------------------------------------------------------------

// IsInitialized reports whether a has been written at least once.
// Unknown attributes report false.
func (n *Network) IsInitialized(a Attribute) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	switch a {
	case MinimumPressureBounds:
		return n.pMin.initialized()
	case MaximumPressureBounds:
		return n.pMax.initialized()
	case MinimumNodalInjections:
		return n.sMin.initialized()
	case MaximumNodalInjections:
		return n.sMax.initialized()
	case ValueUnservedDemand:
		return n.voll.initialized()
	case NodalDemands:
		return n.demand.initialized()
	case FrictionCoefficients:
		return n.friction.initialized()
	case MinimumPressureRatio:
		return n.alphaMin.initialized()
	case MaximumPressureRatio:
		return n.alphaMax.initialized()
	case ReferenceFlows:
		return n.refFlows.initialized()
	case CompressionCost:
		return n.compressionCost.ok
	default:
		return false
	}
}

// Uninitialized lists the attributes that have never been written.
func (n *Network) Uninitialized() []Attribute {
	var out []Attribute
	for _, a := range Attributes() {
		if !n.IsInitialized(a) {
			out = append(out, a)
		}
	}

	return out
}
