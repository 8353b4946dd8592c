package transform

import "github.com/statuta-labs/statuta/ast"

// SortByDependencies topologically orders statutes by their requires edges
// using Kahn's algorithm. A statute's in-degree is the number of other
// statutes that require it, so requirers surface before the statutes they
// depend on. Requires entries naming no statute in the document are
// references that cannot be resolved and are skipped.
//
// Among simultaneously ready statutes the one with the lowest original index
// is placed first, keeping the order reproducible across runs.
type SortByDependencies struct {
	base
}

// NewSortByDependencies creates the transform.
func NewSortByDependencies() *SortByDependencies { return &SortByDependencies{} }

func (*SortByDependencies) Description() string { return "sort statutes by dependencies" }

// Validate runs the sort against a scratch copy so a pipeline can reject a
// cyclic document before applying anything.
func (t *SortByDependencies) Validate(doc *ast.Document) error {
	_, err := t.Apply(doc)
	return err
}

func (*SortByDependencies) Apply(doc *ast.Document) (*ast.Document, error) {
	out := doc.Clone()
	n := len(out.Statutes)

	index := make(map[string]int, n)
	for i, s := range out.Statutes {
		index[s.ID] = i
	}

	inDegree := make([]int, n)
	outEdges := make([][]int, n)
	for i, s := range out.Statutes {
		for _, req := range s.Requires {
			j, ok := index[req]
			if !ok {
				continue
			}
			inDegree[j]++
			outEdges[i] = append(outEdges[i], j)
		}
	}

	placed := make([]*ast.Statute, 0, n)
	done := make([]bool, n)
	for len(placed) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !done[i] && inDegree[i] == 0 {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, &Error{
				Kind: KindCircularDependency,
				Msg:  "circular dependencies detected among statutes",
			}
		}
		done[next] = true
		placed = append(placed, out.Statutes[next])
		for _, j := range outEdges[next] {
			inDegree[j]--
		}
	}

	out.Statutes = placed
	return out, nil
}
