// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gasnet/network"
)

const defaultName = "gasnet_linear"

// Option configures Build.
type Option func(*config)

type config struct {
	name string
}

// WithName sets the problem name written in the LP header.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// params is every attribute Build reads, fetched once up front.
type params struct {
	pMin, pMax, sMin, sMax, voll, demand map[network.NodeID]float64
	friction, alphaMin, alphaMax, ref    map[network.EdgeID]float64
	kappa                                float64
}

func readParams(net *network.Network) (*params, error) {
	var (
		p   params
		err error
	)
	node := func(dst *map[network.NodeID]float64, get func() (map[network.NodeID]float64, error)) {
		if err == nil {
			*dst, err = get()
		}
	}
	edge := func(dst *map[network.EdgeID]float64, get func() (map[network.EdgeID]float64, error)) {
		if err == nil {
			*dst, err = get()
		}
	}
	node(&p.pMin, net.MinimumPressureBounds)
	node(&p.pMax, net.MaximumPressureBounds)
	node(&p.sMin, net.MinimumNodalInjections)
	node(&p.sMax, net.MaximumNodalInjections)
	node(&p.voll, net.ValueUnservedDemand)
	node(&p.demand, net.NodalDemands)
	edge(&p.friction, net.FrictionCoefficients)
	edge(&p.alphaMin, net.MinimumPressureRatio)
	edge(&p.alphaMax, net.MaximumPressureRatio)
	edge(&p.ref, net.ReferenceFlows)
	if err == nil {
		p.kappa, err = net.CompressionCost()
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Build assembles the linearized program of net. Every attribute collection
// must be initialised; the first missing one is reported as a wrapped
// network.ErrUninitialized.
func Build(net *network.Network, opts ...Option) (*Program, error) {
	if net == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilNetwork)
	}
	cfg := config{name: defaultName}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := readParams(net)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	nodes := net.Nodes()
	edges := net.Edges()
	delta := net.IncidenceMatrix().ToRows() // delta[i][j], i = node row, j = edge column

	prog := newProgram(cfg.name)

	pi := make([]int, len(nodes))
	psi := make([]int, len(nodes))
	phi := make([]int, len(edges))
	for i, n := range nodes {
		pi[i] = prog.addVar(fmt.Sprintf("pi(%d)", n), 0, math.Inf(1))
	}
	for i, n := range nodes {
		psi[i] = prog.addVar(fmt.Sprintf("psi(%d)", n), math.Inf(-1), math.Inf(1))
	}
	for j, e := range edges {
		phi[j] = prog.addVar(fmt.Sprintf("phi(%d)", e.ID), math.Inf(-1), math.Inf(1))
	}

	// drop returns scale·Σ_i δ_ij·π_i = scale·(π_tail − π_head) for column j.
	drop := func(j int, scale float64) []Term {
		var terms []Term
		for i := range nodes {
			if d := delta[i][j]; d != 0 {
				terms = append(terms, Term{Var: pi[i], Coef: scale * d})
			}
		}

		return terms
	}
	// ratio returns π_head − rho·π_tail for column j.
	ratio := func(j int, rho float64) []Term {
		var terms []Term
		for i := range nodes {
			switch delta[i][j] {
			case 1:
				terms = append(terms, Term{Var: pi[i], Coef: -rho})
			case -1:
				terms = append(terms, Term{Var: pi[i], Coef: 1})
			}
		}

		return terms
	}

	// Pipes: flow linearized around the reference flow,
	// 2|ref|·φ − c·(π_tail − π_head) = ref·|ref|.
	for j, e := range edges {
		if net.IsCompressor(e.ID) {
			continue
		}
		ref := p.ref[e.ID]
		terms := []Term{{Var: phi[j], Coef: 2 * math.Abs(ref)}}
		terms = append(terms, drop(j, -p.friction[e.ID])...)
		prog.addRow("gas_flow", int(e.ID), EQ, ref*math.Abs(ref), terms)
	}

	// Compressors: outlet/inlet pressure ratio window and forward flow.
	for j, e := range edges {
		if !net.IsCompressor(e.ID) {
			continue
		}
		rhoMin := p.alphaMin[e.ID] * p.alphaMin[e.ID]
		rhoMax := p.alphaMax[e.ID] * p.alphaMax[e.ID]
		prog.addRow("operational_1", int(e.ID), GE, 0, ratio(j, rhoMin))
		prog.addRow("operational_2", int(e.ID), LE, 0, ratio(j, rhoMax))
		prog.addRow("operational_3", int(e.ID), GE, 0, []Term{{Var: phi[j], Coef: 1}})
	}

	// Nodes: pressure security bounds.
	for i, n := range nodes {
		prog.addRow("security_1", int(n), GE, p.pMin[n]*p.pMin[n], []Term{{Var: pi[i], Coef: 1}})
	}
	for i, n := range nodes {
		prog.addRow("security_2", int(n), LE, p.pMax[n]*p.pMax[n], []Term{{Var: pi[i], Coef: 1}})
	}

	// Nodes: injection equals net outflow, ψ − Σ_j δ_ij·φ_j = 0.
	for i, n := range nodes {
		terms := []Term{{Var: psi[i], Coef: 1}}
		for j := range edges {
			if d := delta[i][j]; d != 0 {
				terms = append(terms, Term{Var: phi[j], Coef: -d})
			}
		}
		prog.addRow("injection", int(n), EQ, 0, terms)
	}

	// Nodes: contractual injection window; demand nodes may only offtake.
	psiMin, psiMax := injectionWindow(nodes, p)
	for i, n := range nodes {
		prog.addRow("contractual_1", int(n), GE, psiMin[n], []Term{{Var: psi[i], Coef: 1}})
	}
	for i, n := range nodes {
		prog.addRow("contractual_2", int(n), LE, psiMax[n], []Term{{Var: psi[i], Coef: 1}})
	}

	// Objective: κ·(π_head − π_tail) over compressors plus value of unserved demand.
	var obj []Term
	for j, e := range edges {
		if net.IsCompressor(e.ID) {
			obj = append(obj, drop(j, -p.kappa)...)
		}
	}
	for i, n := range nodes {
		obj = append(obj, Term{Var: psi[i], Coef: p.voll[n]})
		prog.constant += p.voll[n] * p.demand[n]
	}
	prog.objective = compact(obj)

	return prog, nil
}

// injectionWindow applies the demand override to the injection bounds.
func injectionWindow(nodes []network.NodeID, p *params) (lo, hi map[network.NodeID]float64) {
	lo = make(map[network.NodeID]float64, len(nodes))
	hi = make(map[network.NodeID]float64, len(nodes))
	for _, n := range nodes {
		if d := p.demand[n]; d != 0 {
			lo[n], hi[n] = -d, 0
			continue
		}
		lo[n], hi[n] = p.sMin[n], p.sMax[n]
	}

	return lo, hi
}
