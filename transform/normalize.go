package transform

import (
	"strings"

	"github.com/statuta-labs/statuta/ast"
)

// NormalizeIDs canonicalizes statute ids: lowercase, with spaces and
// underscores replaced by hyphens. A first pass builds the id mapping; a
// second pass rewrites every Requires and Supersedes reference through it,
// so references stay attached to the statutes they named.
//
// Distinct ids can normalize to the same string ("A_B" and "A-B" both
// become "a-b"). The transform does not detect such collisions; resolving
// them (for example by running Deduplicate afterwards) is the caller's
// responsibility.
type NormalizeIDs struct {
	base
}

// NewNormalizeIDs creates the transform.
func NewNormalizeIDs() *NormalizeIDs { return &NormalizeIDs{} }

func (*NormalizeIDs) Description() string { return "normalize statute ids" }

func normalizeID(id string) string {
	id = strings.ToLower(id)
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, "_", "-")
	return id
}

func (*NormalizeIDs) Apply(doc *ast.Document) (*ast.Document, error) {
	out := doc.Clone()

	mapping := make(map[string]string, len(out.Statutes))
	for _, s := range out.Statutes {
		mapping[s.ID] = normalizeID(s.ID)
	}

	rewrite := func(refs []string) {
		for i, ref := range refs {
			if mapped, ok := mapping[ref]; ok {
				refs[i] = mapped
			} else {
				// Dangling reference: normalize it the same way so
				// the document stays uniformly cased either way.
				refs[i] = normalizeID(ref)
			}
		}
	}

	for _, s := range out.Statutes {
		s.ID = mapping[s.ID]
		rewrite(s.Requires)
		rewrite(s.Supersedes)
	}
	return out, nil
}
