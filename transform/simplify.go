package transform

import "github.com/statuta-labs/statuta/ast"

// Simplify lifts the double-negation eliminator over every condition of
// every statute in the document.
type Simplify struct {
	base
}

// NewSimplify creates the transform.
func NewSimplify() *Simplify { return &Simplify{} }

func (*Simplify) Description() string { return "simplify conditions" }

func (t *Simplify) Apply(doc *ast.Document) (*ast.Document, error) {
	out := doc.Clone()
	for _, s := range out.Statutes {
		for i, c := range s.Conditions {
			s.Conditions[i] = eliminateDoubleNegation(c)
		}
	}
	return out, nil
}
