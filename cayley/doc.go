// Package cayley exposes the Cayley graphs of an enumerated semigroup
// as labelled digraphs and provides the standard structural checks on
// them.
//
// 🚀 What is a Cayley graph?
//
//	The right Cayley graph has one node per semigroup element and, for
//	every generator a, an edge x → x·a labelled a. The left graph uses
//	a·x instead. Out-degree is constant: one edge per label per node.
//
// ✨ Key features:
//   - RightGraph / LeftGraph snapshot a fully enumerated semigroup
//   - Neighbor(v, a): O(1) labelled edge lookup
//   - FollowPath(g, from, word): replay a word along the edges
//   - BFS(g, from): distances, spanning tree and shortest labelled
//     words via WordTo
//   - StronglyConnected: iterative Tarjan; on Cayley graphs the
//     components are the R-classes (right) and L-classes (left)
//   - IsAcyclic / TopologicalSort: iterative three-colour DFS, no
//     recursion, cycle-safe on graphs with millions of nodes
//
// ⚙️ Usage:
//
//	S, _ := semigroup.New(gens)
//	g := cayley.RightGraph(S)
//	p, err := cayley.FollowPath(g, 0, []int{1, 0, 1})
//
// Complexity:
//
//   - Time:  O(n·k) to snapshot, O(n·k) for IsAcyclic/TopologicalSort
//   - Space: O(n·k) per graph for n nodes over k labels
//
// See examples in example_test.go.
package cayley
