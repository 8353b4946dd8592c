package transform

import "errors"

// ErrorKind enumerates the failure modes of this package. Callers branch on
// the kind, never on message text.
type ErrorKind int

const (
	// KindNotReversible marks a Reverse call on a transform whose
	// Reversible flag is false. Always avoidable by checking the flag.
	KindNotReversible ErrorKind = iota

	// KindCircularDependency marks a requires graph that admits no
	// topological order. The source document must be fixed; there is no
	// automatic recovery.
	KindCircularDependency

	// KindUnknownTransform marks a recipe entry naming no registered
	// transform.
	KindUnknownTransform
)

// Error is the error type produced by this package.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// IsKind reports whether err is a transform Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}

// IsNotReversible reports whether err is a not-reversible error.
func IsNotReversible(err error) bool { return IsKind(err, KindNotReversible) }

// IsCircularDependency reports whether err is a cyclic-dependency error.
func IsCircularDependency(err error) bool { return IsKind(err, KindCircularDependency) }
