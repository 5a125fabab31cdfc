// Package analysis summarizes particle tables after a run.
//
//   - [NeighborHistogram]: distribution of neighbor-list sizes
package analysis
