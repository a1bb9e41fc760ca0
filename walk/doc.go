// SPDX-License-Identifier: MIT
// Package walk provides breadth-first traversal over the face adjacency of a
// model.Model: two faces are neighbors when an edge bounds both.
//
// What
//
//   - Faces returns a Result with visit Order, Depth (edge crossings from the
//     start) and Parent links; Result.PathTo rebuilds a face chain.
//   - Components groups all faces into edge-connected sets. The builder
//     package uses it to turn every closed face set into a region.
//
// Options
//
//   - WithContext(ctx):      cancellation.
//   - WithMaxDepth(d):       stop beyond depth d (>0); negative is rejected.
//   - WithFilterFace(fn):    refuse individual steps; ManifoldOnly is provided.
//   - WithOnVisit(fn):       per-face hook; a returned error aborts the walk.
//
// Determinism
//
//	Neighbors are taken in loop order of the current face's edges and in
//	edge-use order on each edge, so repeated walks of the same model agree.
//
// Complexity
//
//   - Time:   O(F + U), U = edge-uses of the visited faces' edges.
//   - Memory: O(F) for the queue, depth and parent maps.
package walk
