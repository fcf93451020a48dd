// Package reference loads the static lookup documents the client consumes:
// the locale date/time format table and the CompTIA defect-code book.
//
// Both documents are YAML; JSON files load unchanged.
package reference
