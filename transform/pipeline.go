package transform

import (
	"github.com/rs/zerolog"

	"github.com/statuta-labs/statuta/ast"
)

// Pipeline applies an ordered sequence of transforms. Application is
// fail-fast: the result is either the fully transformed document or the
// first member's error, never a partially transformed document.
type Pipeline struct {
	transforms []Transform
	log        zerolog.Logger
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{log: zerolog.Nop()}
}

// Add appends a transform and returns the pipeline for chaining.
func (p *Pipeline) Add(t Transform) *Pipeline {
	p.transforms = append(p.transforms, t)
	return p
}

// WithLogger routes step-level debug events to the given logger.
func (p *Pipeline) WithLogger(log zerolog.Logger) *Pipeline {
	p.log = log
	return p
}

// Len returns the number of transforms in the pipeline.
func (p *Pipeline) Len() int { return len(p.transforms) }

// Apply folds the document through each transform in order. The result is
// always freshly owned, even for an empty pipeline.
func (p *Pipeline) Apply(doc *ast.Document) (*ast.Document, error) {
	current := doc.Clone()
	for _, t := range p.transforms {
		next, err := t.Apply(current)
		if err != nil {
			p.log.Debug().Str("transform", t.Description()).Err(err).Msg("pipeline aborted")
			return nil, err
		}
		p.log.Debug().
			Str("transform", t.Description()).
			Int("statutes", len(next.Statutes)).
			Msg("transform applied")
		current = next
	}
	return current, nil
}

// ApplyValidated runs every member's Validate against the original document
// before applying any transform, so a validation failure leaves no work
// half-done.
func (p *Pipeline) ApplyValidated(doc *ast.Document) (*ast.Document, error) {
	for _, t := range p.transforms {
		if err := t.Validate(doc); err != nil {
			p.log.Debug().Str("transform", t.Description()).Err(err).Msg("validation failed")
			return nil, err
		}
	}
	return p.Apply(doc)
}

// Describe returns each member's description in pipeline order.
func (p *Pipeline) Describe() []string {
	descs := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		descs[i] = t.Description()
	}
	return descs
}

// Reversible is true only if every member reports reversible.
func (p *Pipeline) Reversible() bool {
	for _, t := range p.transforms {
		if !t.Reversible() {
			return false
		}
	}
	return true
}
