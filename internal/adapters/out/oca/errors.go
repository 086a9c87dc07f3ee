package oca

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying carrier call failures by stage. Use errors.Is
// to branch; the concrete types carry the human-readable detail.
var (
	// ErrTransport covers network failures and non-success HTTP statuses.
	ErrTransport = errors.New("carrier transport error")
	// ErrVendor covers business errors reported by the carrier itself.
	ErrVendor = errors.New("carrier vendor error")
	// ErrParse covers responses matching neither the success nor the known
	// error pattern.
	ErrParse = errors.New("carrier response parse error")
)

// TransportError indicates the HTTP round trip to the carrier failed.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrTransport, e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// VendorError indicates the carrier accepted the call but reported a business
// failure. The carrier's error channel is plain text, so Message carries the
// raw response verbatim.
type VendorError struct {
	Message string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s: %s", ErrVendor, e.Message)
}

func (e *VendorError) Unwrap() error {
	return ErrVendor
}

// ParseError indicates the response text matched neither the success marker
// nor the vendor error pattern.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: could not parse response", ErrParse)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
