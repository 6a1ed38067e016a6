// Package unveil extracts structured records from published conflict
// trackers. It parses source articles into a tree, walks the tree through a
// chain of scoped parsers, normalizes the raw record stream, and filters
// out records that fail validation before they reach storage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/), and the
// per-source parser chains live in oryx/ and yale/.
package unveil
