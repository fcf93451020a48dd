// Package identifier classifies and validates GSX identifier strings.
//
// Ownership boundary:
// - ordered (kind, pattern) table
// - classification with last-match-wins resolution
// - typed validation entry points
package identifier
