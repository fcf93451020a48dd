package identifier

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidInput = errors.New("identifier: invalid input")
	ErrUnknownKind  = errors.New("identifier: unknown kind")
)

// Kind names one identifier shape.
type Kind string

const (
	PartNumber            Kind = "partNumber"
	SerialNumber          Kind = "serialNumber"
	EEECode               Kind = "eeeCode"
	ReturnOrder           Kind = "returnOrder"
	RepairNumber          Kind = "repairNumber"
	DispatchID            Kind = "dispatchId"
	AlternateDeviceID     Kind = "alternateDeviceId"
	DiagnosticEventNumber Kind = "diagnosticEventNumber"
	ProductName           Kind = "productName"
)

func (k Kind) String() string {
	return string(k)
}

// Pattern binds a Kind to its matcher.
type Pattern struct {
	Kind Kind
	Rex  *regexp.Regexp
}

// Patterns is evaluated in order; the last matching entry wins.
var Patterns = []Pattern{
	{Kind: PartNumber, Rex: regexp.MustCompile(`^([A-Z]{1,2})?\d{3}-?(\d{4}|[A-Z]{2})(/[A-Z])?$`)},
	{Kind: SerialNumber, Rex: regexp.MustCompile(`^[A-Z0-9]{11,12}$`)},
	{Kind: EEECode, Rex: regexp.MustCompile(`^[A-Z0-9]{3,4}$`)},
	{Kind: ReturnOrder, Rex: regexp.MustCompile(`^7\d{9}$`)},
	{Kind: RepairNumber, Rex: regexp.MustCompile(`^\d{12}$`)},
	{Kind: DispatchID, Rex: regexp.MustCompile(`^G\d{9}$`)},
	{Kind: AlternateDeviceID, Rex: regexp.MustCompile(`^\d{15}$`)},
	{Kind: DiagnosticEventNumber, Rex: regexp.MustCompile(`^\d{23}$`)},
	{Kind: ProductName, Rex: regexp.MustCompile(`^i?Mac`)},
}

// Classify returns the kind of the last pattern in table order matching value.
func Classify(value string) (Kind, bool) {
	var (
		found Kind
		ok    bool
	)
	for _, p := range Patterns {
		if p.Rex.MatchString(value) {
			found, ok = p.Kind, true
		}
	}
	return found, ok
}

// Validate reports whether value classifies as expected. Non-string input
// fails with ErrInvalidInput.
func Validate(value any, expected Kind) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a string", ErrInvalidInput, value)
	}
	return Is(s, expected), nil
}

// Is reports whether value classifies as expected.
func Is(value string, expected Kind) bool {
	got, ok := Classify(value)
	return ok && got == expected
}

// ParseKind resolves a kind by name.
func ParseKind(name string) (Kind, error) {
	for _, p := range Patterns {
		if string(p.Kind) == name {
			return p.Kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
