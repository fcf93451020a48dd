// Package protocol owns the GSX wire data model and its conversions.
//
// Ownership boundary:
// - raw XML node trees (Node, ParseNode)
// - normalized values (Value, Map) and typed accessors
// - leaf coercion rules and tree normalization with duplicate-tag folding
// - request payload marshalling back to XML
package protocol
