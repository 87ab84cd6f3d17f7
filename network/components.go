// SPDX-License-Identifier: MIT

package network

// walker holds breadth-first search state over the undirected view of the
// topology (edge orientation ignored, parallel edges collapse).
type walker struct {
	adj     [][]int // row → neighbour rows
	visited []bool
	queue   []int
}

func (n *Network) newWalker() *walker {
	w := &walker{
		adj:     make([][]int, len(n.nodes)),
		visited: make([]bool, len(n.nodes)),
		queue:   make([]int, 0, len(n.nodes)),
	}
	for _, e := range n.edges {
		u, v := n.nodeIndex[e.From], n.nodeIndex[e.To]
		if u == v {
			continue
		}
		w.adj[u] = append(w.adj[u], v)
		w.adj[v] = append(w.adj[v], u)
	}

	return w
}

// visit runs BFS from root and returns the rows reached, in visit order.
func (w *walker) visit(root int) []int {
	w.queue = append(w.queue[:0], root)
	w.visited[root] = true
	order := []int{root}
	for len(w.queue) > 0 {
		curr := w.queue[0]
		w.queue = w.queue[1:]
		for _, nb := range w.adj[curr] {
			if w.visited[nb] {
				continue
			}
			w.visited[nb] = true
			order = append(order, nb)
			w.queue = append(w.queue, nb)
		}
	}

	return order
}

// Components returns the weakly connected components of the network. Each
// component lists its nodes in BFS order from its first node in Nodes()
// order; components are ordered by that first node.
//
// Complexity: O(|N| + |E|).
func (n *Network) Components() [][]NodeID {
	w := n.newWalker()
	var out [][]NodeID
	for root := range n.nodes {
		if w.visited[root] {
			continue
		}
		rows := w.visit(root)
		comp := make([]NodeID, len(rows))
		for i, r := range rows {
			comp[i] = n.nodes[r]
		}
		out = append(out, comp)
	}

	return out
}

// IsConnected reports whether every node is reachable from every other node
// when edge orientation is ignored. An empty network is connected.
func (n *Network) IsConnected() bool {
	return len(n.Components()) <= 1
}
