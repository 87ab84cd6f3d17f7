// Package gasnet models natural-gas transmission networks and turns them into
// linear programs.
//
// 🚀 What is gasnet?
//
//	A small, thread-safe toolkit that brings together:
//		• Topology: nodes, directed edges, pipes vs compressors, validated once
//		• Attributes: eleven named collections (pressures, injections, demand,
//		  friction, compressor ratios, reference flows, compression cost)
//		• Incidence view: the node×edge matrix (+1 tail, −1 head)
//		• Linear model: squared-pressure formulation, CPLEX LP export
//		• Snapshots: YAML / JSON / msgpack, optional zstd
//		• Fixtures: path, ring, star, grid and random generators
//
// Under the hood, everything is organized under these subpackages:
//
//	network/  - Network, Edge, Attribute; construction and attribute store
//	matrix/   - Dense storage, oriented incidence builder, gonum bridge
//	model/    - Program, Build, WriteLP, pressure/flow checks
//	snapshot/ - Capture/Restore and file codecs
//	builder/  - deterministic topology constructors and attribute profiles
//	cmd/gasnet - inspect, lp, eval, generate, convert
//
// Quick ASCII example:
//
//	    1 ──pipe──▶ 2 ══compressor══▶ 3
//
//	a supply node, a junction and a demand node; edge 2 is a compressor.
//
//	go install github.com/katalvlaran/gasnet/cmd/gasnet@latest
package gasnet
