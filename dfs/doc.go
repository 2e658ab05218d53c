// Package dfs implements cycle detection and topological sort on a
// core.Graph, supporting both directed and undirected graphs where
// appropriate.
//
// What:
//
//   - DetectCycles: enumerates all simple cycles in directed or undirected
//     graphs using vertex coloring (White, Gray, Black) with back‑edge
//     recording and canonical signature deduplication.
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Why:
//   - Determine safe execution orders in DAGs
//   - Detect cycles to prevent infinite loops or inconsistent states
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//
// Complexity:
//
//   - DetectCycles:   Time O(V+E + C*L), Memory O(V+L\_max)
//     (C=#cycles, L=avg cycle length; normalization is O(L) via Booth's algorithm)
//   - TopologicalSort\:Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrCycleDetected        cycle discovered in DAG operations
//
// Functions:
//
//   - DetectCycles(g \*core.Graph) (bool, \[]\[]string, error)
//     report existence and list of simple cycles
//   - TopologicalSort(g \*core.Graph) (\[]string, error)
//     return topological order or ErrCycleDetected
package dfs
