package gsx

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration      = errors.New("gsx: configuration error")
	ErrNotInitialized     = errors.New("gsx: client not initialized")
	ErrNotConnected       = errors.New("gsx: no active session")
	ErrInvalidCredentials = errors.New("gsx: invalid credentials")
	ErrNoSessionToken     = errors.New("gsx: authentication returned no session token")
	ErrResultMissing      = errors.New("gsx: result field missing")
	ErrUnknownOperation   = errors.New("gsx: unknown operation")
	ErrInvalidArgument    = errors.New("gsx: invalid argument")
)

// Error is a remote fault translated into the domain.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gsx: %s: %s", e.Code, e.Message)
}

// fault is implemented by transport fault types such as *soap.Fault.
type fault interface {
	FaultCode() string
	FaultString() string
}

// MapFault converts a transport fault into *Error. Other errors are
// returned unchanged.
func MapFault(err error) error {
	if err == nil {
		return nil
	}
	var f fault
	if errors.As(err, &f) {
		return &Error{Code: f.FaultCode(), Message: f.FaultString()}
	}
	return err
}

// IsCode reports whether err is a domain error carrying code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
