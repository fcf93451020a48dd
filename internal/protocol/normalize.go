package protocol

import (
	"errors"
	"fmt"
)

// FieldError records one leaf that failed coercion during normalization.
type FieldError struct {
	Path string
	Err  error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Report collects per-field coercion failures. A failed leaf keeps its raw
// text as a string value, so the tree is still usable.
type Report struct {
	Fields []FieldError
}

func (r Report) OK() bool {
	return len(r.Fields) == 0
}

// Err joins every field error, or returns nil when there are none.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Fields))
	for _, fe := range r.Fields {
		errs = append(errs, fe)
	}
	return errors.Join(errs...)
}

func (r *Report) add(path string, err error) {
	r.Fields = append(r.Fields, FieldError{Path: path, Err: err})
}

// Normalize converts node into a Map keyed by its immediate children's tags.
// Children are normalized depth-first in document order; repeated sibling
// tags fold into lists. Coercion failures are reported, not fatal.
func Normalize(node *Node) (Value, Report) {
	var rep Report
	m := NewMap()
	if node != nil {
		normalizeChildren(node, node.Tag, m, &rep)
	}
	return MapOf(m), rep
}

// NormalizeLeaf coerces a single leaf, falling back to its raw text.
func NormalizeLeaf(field, text string) (Value, Report) {
	var rep Report
	v, err := Coerce(field, text)
	if err != nil {
		rep.add(field, err)
		return String(text), rep
	}
	return v, rep
}

func normalizeNode(n *Node, path string, rep *Report) Value {
	if n.IsLeaf() {
		v, err := Coerce(n.Tag, n.Text)
		if err != nil {
			rep.add(path, err)
			return String(n.Text)
		}
		return v
	}
	m := NewMap()
	normalizeChildren(n, path, m, rep)
	return MapOf(m)
}

func normalizeChildren(n *Node, path string, m *Map, rep *Report) {
	seen := make(map[string]int, len(n.Children))
	for _, child := range n.Children {
		childPath := path + "/" + child.Tag
		if idx := seen[child.Tag]; idx > 0 {
			childPath = fmt.Sprintf("%s[%d]", childPath, idx)
		}
		seen[child.Tag]++
		m.Add(child.Tag, normalizeNode(child, childPath, rep))
	}
}
