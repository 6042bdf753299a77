// Package dedup implements the duplicate-matching engine: filename
// normalization into a canonical (artist, title, version) triple, version
// annotation classification, the deterministic quality tie-break, and the
// parallel all-pairs scan over a collection of descriptors.
//
// Matching is exact on the normalized artist and title fields. Version
// annotations are compared as marker-keyword families; a file with a
// distinguishing annotation never matches one without, which biases the
// engine toward preserving legitimate alternate mixes.
package dedup
