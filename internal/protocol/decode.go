package protocol

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a raw response tree. Tag is the local name with
// any namespace prefix removed.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Find returns the first descendant tagged tag, depth-first in document order.
func (n *Node) Find(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
		if found := child.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant tagged tag in document order.
func (n *Node) FindAll(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, child.FindAll(tag)...)
	}
	return out
}

// Child returns the first direct child tagged tag.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// ParseNode reads one XML document from r into a Node tree. Text on
// elements that have children is discarded.
func ParseNode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Node
		stack []*Node
		texts []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedXML)
			}
			stack = append(stack, n)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(texts) > 0 {
				texts[len(texts)-1].Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			if n.IsLeaf() {
				n.Text = texts[len(texts)-1].String()
			}
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element %q", ErrMalformedXML, stack[len(stack)-1].Tag)
	}
	return root, nil
}
