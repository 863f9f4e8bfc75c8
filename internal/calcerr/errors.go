// Package calcerr defines the error kinds reported by the conductor engine.
package calcerr

import (
	"errors"
	"fmt"
)

// PackingError reports a strand layout that cannot be built, such as a ring
// with strands still to place but no capacity left.
type PackingError struct {
	msg string
}

func (e *PackingError) Error() string {
	return "packing: " + e.msg
}

// ConfigurationError reports inputs rejected before any geometry is computed.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.msg
}

// DomainError reports a formula evaluated outside its physical domain, such as
// a line spacing that is not larger than the conductor radius.
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string {
	return "domain: " + e.msg
}

// Packing returns a *PackingError with a formatted message.
func Packing(format string, args ...any) error {
	return &PackingError{msg: fmt.Sprintf(format, args...)}
}

// Configuration returns a *ConfigurationError with a formatted message.
func Configuration(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// Domain returns a *DomainError with a formatted message.
func Domain(format string, args ...any) error {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

// IsPacking reports whether err wraps a *PackingError.
func IsPacking(err error) bool {
	var target *PackingError
	return errors.As(err, &target)
}

// IsConfiguration reports whether err wraps a *ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsDomain reports whether err wraps a *DomainError.
func IsDomain(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}
