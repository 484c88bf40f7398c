// Package lru implements a simple, bounded, least-recently-used cache, with
// get-or-construct semantics, meaning lookups never miss, from the caller's
// perspective.
//
// All operations are O(1). Caches are safe for concurrent use, guarded by a
// single mutex, unless configured otherwise.
package lru
