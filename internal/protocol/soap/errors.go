package soap

import (
	"errors"
	"fmt"
)

var (
	ErrEndpointRequired = errors.New("soap: endpoint required")
	ErrOperationMissing = errors.New("soap: operation required")
	ErrHTTPStatus       = errors.New("soap: unexpected http status")
	ErrNoBody           = errors.New("soap: response has no body element")
)

// Fault is a SOAP fault returned by the remote service.
type Fault struct {
	Code   string
	String string
	Detail string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap: fault %s: %s", f.Code, f.String)
}

func (f *Fault) FaultCode() string {
	return f.Code
}

func (f *Fault) FaultString() string {
	return f.String
}
