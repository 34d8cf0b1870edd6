package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// New returns an error with a stack trace attached.
func New(msg string) error { return crdb.New(msg) }

// Newf returns a formatted error with a stack trace attached.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// Mark makes err match reference under Is while keeping its own message.
func Mark(err error, reference error) error { return crdb.Mark(err, reference) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return crdb.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// Unwrap returns the next error in err's chain.
func Unwrap(err error) error { return crdb.Unwrap(err) }
