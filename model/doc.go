// SPDX-License-Identifier: MIT

// Package model assembles the linearized gas-flow program of a fully
// initialised network.Network and writes it in CPLEX LP text format.
// It does not solve anything; the LP file is handed to an external solver.
//
// Variables: pi(n) ≥ 0 (squared nodal pressure), psi(n) free (injection),
// phi(e) free (edge flow). Row families, named as LP solvers report them
// ("c_e_gas_flow(3)_", "c_l_security_1(16)_", "c_u_security_2(16)_"):
//
//	gas_flow(p)       pipes        2|ref|·φ − c·(π_tail − π_head) = ref·|ref|
//	operational_1(c)  compressors  π_head − αmin²·π_tail ≥ 0
//	operational_2(c)  compressors  π_head − αmax²·π_tail ≤ 0
//	operational_3(c)  compressors  φ ≥ 0
//	security_1(n)     nodes        π ≥ pmin²
//	security_2(n)     nodes        π ≤ pmax²
//	injection(n)      nodes        ψ − Σδφ = 0   (ψ > 0 injects)
//	contractual_1(n)  nodes        ψ ≥ Ψmin
//	contractual_2(n)  nodes        ψ ≤ Ψmax
//
// The objective minimises κ·Σ_c (π_head − π_tail) + Σ_n v·(d + ψ).
// δ is the network's incidence matrix (+1 at the tail), so Σ_i δ_ij·π_i is
// the pressure drop along edge j and Σ_j δ_ij·φ_j the net outflow of node i.
//
// A node with non-zero demand d gets Ψmin = −d and Ψmax = 0 regardless of
// its injection bounds.
package model
