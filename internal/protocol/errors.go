package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrKindMismatch     = errors.New("protocol: value kind mismatch")
	ErrCoercion         = errors.New("protocol: coercion failed")
	ErrMalformedXML     = errors.New("protocol: malformed xml")
	ErrEmptyDocument    = errors.New("protocol: empty document")
	ErrUnsupportedValue = errors.New("protocol: unsupported payload value")
)

// Rule names the coercion rule selected for a leaf.
type Rule string

const (
	RuleBinary    Rule = "binary"
	RuleDate      Rule = "date"
	RulePrice     Rule = "price"
	RuleTimeStamp Rule = "timestamp"
	RuleFlag      Rule = "flag"
	RuleText      Rule = "text"
)

// CoercionError reports a leaf whose text did not fit its inferred rule.
type CoercionError struct {
	Field string
	Text  string
	Rule  Rule
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("protocol: coerce %s=%q as %s: %v", e.Field, e.Text, e.Rule, e.Err)
}

func (e *CoercionError) Unwrap() []error {
	return []error{ErrCoercion, e.Err}
}
