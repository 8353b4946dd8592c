package ast

import (
	"fmt"
	"strings"
)

// Document is the root of the model: an ordered list of statutes plus
// import metadata carried through untouched by every rewrite stage.
type Document struct {
	Statutes []*Statute
	Imports  []string
}

// Statute is a single rule: AND-combined condition trees guarding a list of
// effects. Requires and Supersedes hold statute ids, resolved against the
// owning document's other statutes.
type Statute struct {
	ID         string
	Title      string
	Conditions []Condition
	Effects    []Effect
	Discretion *Discretion
	Requires   []string
	Supersedes []string
}

// Effect is an outcome a statute produces when its conditions hold.
type Effect struct {
	Action string
	Target string
	Params map[string]string
}

// Discretion grants a named authority leeway in applying the statute.
type Discretion struct {
	Holder   string
	Guidance string
}

// Clone returns a deep copy of the document. The copy shares no memory with
// the original, so rewrites on the copy are invisible to holders of the
// original.
func (d *Document) Clone() *Document {
	cp := &Document{
		Imports: append([]string(nil), d.Imports...),
	}
	if d.Statutes != nil {
		cp.Statutes = make([]*Statute, len(d.Statutes))
		for i, s := range d.Statutes {
			cp.Statutes[i] = s.Clone()
		}
	}
	return cp
}

// Clone returns a deep copy of the statute.
func (s *Statute) Clone() *Statute {
	cp := &Statute{
		ID:         s.ID,
		Title:      s.Title,
		Requires:   append([]string(nil), s.Requires...),
		Supersedes: append([]string(nil), s.Supersedes...),
	}
	if s.Conditions != nil {
		cp.Conditions = make([]Condition, len(s.Conditions))
		for i, c := range s.Conditions {
			cp.Conditions[i] = c.Clone()
		}
	}
	if s.Effects != nil {
		cp.Effects = make([]Effect, len(s.Effects))
		for i, e := range s.Effects {
			cp.Effects[i] = e.Clone()
		}
	}
	if s.Discretion != nil {
		disc := *s.Discretion
		cp.Discretion = &disc
	}
	return cp
}

// Clone returns a deep copy of the effect.
func (e Effect) Clone() Effect {
	cp := e
	if e.Params != nil {
		cp.Params = make(map[string]string, len(e.Params))
		for k, v := range e.Params {
			cp.Params[k] = v
		}
	}
	return cp
}

func (s *Statute) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "statute %q", s.ID)
	if len(s.Conditions) > 0 {
		conds := make([]string, len(s.Conditions))
		for i, c := range s.Conditions {
			conds[i] = c.String()
		}
		fmt.Fprintf(&b, " when %s", strings.Join(conds, " AND "))
	}
	fmt.Fprintf(&b, " (%d effects)", len(s.Effects))
	return b.String()
}
