package transform

import "github.com/statuta-labs/statuta/ast"

// RemoveEmpty drops statutes that produce nothing: no effects and no
// discretion clause. A statute with at least one of either is kept.
type RemoveEmpty struct {
	base
}

// NewRemoveEmpty creates the transform.
func NewRemoveEmpty() *RemoveEmpty { return &RemoveEmpty{} }

func (*RemoveEmpty) Description() string { return "remove empty statutes" }

func (*RemoveEmpty) Apply(doc *ast.Document) (*ast.Document, error) {
	out := doc.Clone()
	kept := out.Statutes[:0]
	for _, s := range out.Statutes {
		if len(s.Effects) == 0 && s.Discretion == nil {
			continue
		}
		kept = append(kept, s)
	}
	out.Statutes = kept
	return out, nil
}
