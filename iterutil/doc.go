// Package iterutil provides lazy iterator adapters, for use with range-over-func.
//
// Adapters are single-pass if their input is, and restartable if their input
// is. Nothing is buffered beyond the current element.
package iterutil
