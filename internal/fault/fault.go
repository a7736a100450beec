// Package fault defines the two error kinds pageroots distinguishes:
// usage errors (user-correctable misconfiguration, reported with remediation
// text) and internal errors (invariant violations that indicate a bug in
// pageroots itself). Call sites and tests branch on the kind instead of
// matching message strings.
package fault

import (
	"errors"
	"fmt"
)

// UsageError is a user-correctable misconfiguration, e.g. a package that is
// not installed or an include path that cannot be expressed.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// Usagef creates a UsageError. The message should name the offending input
// and tell the user how to fix it.
func Usagef(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err is (or wraps) a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// InternalError is a violated invariant. It is never expected under correct
// configuration and signals a bug in the resolution algorithm.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.msg + " (this looks like a pageroots bug, please report it)"
}

// Internalf creates an InternalError.
func Internalf(format string, args ...any) error {
	return &InternalError{msg: fmt.Sprintf(format, args...)}
}

// IsInternal reports whether err is (or wraps) an InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
