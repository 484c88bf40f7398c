// Package containers provides membership tests over iterators, and
// predicate-based erasure for node, map, and slice containers.
package containers
