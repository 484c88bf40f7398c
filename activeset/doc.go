// Package activeset tracks the active subset of a pre-allocated population,
// such as voices or smoothers, using links embedded in the elements.
//
// Elements embed Links, and the Overlay threads a doubly-linked list through
// them, so adding, removing, and iterating never allocate. Iteration visits
// only the active elements, most recently added first.
//
// Overlays are not safe for concurrent use. An element may belong to at most
// one Overlay at a time.
package activeset
