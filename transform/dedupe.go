package transform

import "github.com/statuta-labs/statuta/ast"

// Deduplicate keeps the first statute per unique id and drops later
// duplicates, preserving relative order.
type Deduplicate struct {
	base
}

// NewDeduplicate creates the transform.
func NewDeduplicate() *Deduplicate { return &Deduplicate{} }

func (*Deduplicate) Description() string { return "deduplicate statutes" }

func (*Deduplicate) Apply(doc *ast.Document) (*ast.Document, error) {
	out := doc.Clone()
	seen := make(map[string]bool, len(out.Statutes))
	kept := out.Statutes[:0]
	for _, s := range out.Statutes {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		kept = append(kept, s)
	}
	out.Statutes = kept
	return out, nil
}
