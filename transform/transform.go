package transform

import "github.com/statuta-labs/statuta/ast"

// Transform is the contract for a document-level rewrite. Apply consumes an
// immutable view of the document and returns a new, independently owned one;
// it fails only on genuine domain violations (a dependency cycle), never on
// a merely well-formed input.
type Transform interface {
	// Apply returns the transformed document or an error. The input is
	// never mutated.
	Apply(doc *ast.Document) (*ast.Document, error)

	// Description names the transform for pipeline summaries and logs.
	Description() string

	// Reversible reports whether Reverse is implemented.
	Reversible() bool

	// Reverse undoes the transform. Implementations that report
	// Reversible() == false fail with a KindNotReversible error.
	Reverse(doc *ast.Document) (*ast.Document, error)

	// Validate checks preconditions against a document without applying
	// anything.
	Validate(doc *ast.Document) error
}

// base supplies the optional parts of the contract. Built-ins embed it and
// override only what they implement.
type base struct{}

func (base) Reversible() bool { return false }

func (base) Reverse(*ast.Document) (*ast.Document, error) {
	return nil, &Error{
		Kind: KindNotReversible,
		Msg:  "transform is not reversible",
	}
}

func (base) Validate(*ast.Document) error { return nil }
