package optimize

import "github.com/statuta-labs/statuta/ast"

// cseStatute removes conditions whose signature duplicates an earlier one in
// the same statute. First occurrence wins; the counter advances once per
// removed duplicate.
func (o *Optimizer) cseStatute(s *ast.Statute) {
	seen := make(map[string]bool, len(s.Conditions))
	kept := s.Conditions[:0]
	for _, c := range s.Conditions {
		sig := signature(c)
		if seen[sig] {
			o.stats.DuplicatesEliminated++
			continue
		}
		seen[sig] = true
		kept = append(kept, c)
	}
	s.Conditions = kept
}
