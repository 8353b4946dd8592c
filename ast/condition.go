package ast

import (
	"fmt"
	"strings"
	"time"
)

// CompareOp is a comparison operator used by Comparison and
// TemporalComparison conditions.
type CompareOp string

const (
	OpEq CompareOp = "=="
	OpNe CompareOp = "!="
	OpLt CompareOp = "<"
	OpLe CompareOp = "<="
	OpGt CompareOp = ">"
	OpGe CompareOp = ">="
)

// Condition is the closed interface over all condition variants. A tree is
// built from leaf predicates combined with And, Or and Not; composite nodes
// own their children, so cloning a node clones the whole subtree.
type Condition interface {
	// Clone returns a deep copy sharing no memory with the receiver.
	Clone() Condition

	String() string

	condNode()
}

// Comparison tests a field against a literal value.
type Comparison struct {
	Field string
	Op    CompareOp
	Value Value
}

// Between tests that a field falls inclusively between Min and Max.
type Between struct {
	Field string
	Min   Value
	Max   Value
}

// In tests set membership of a field against a list of literals.
type In struct {
	Field  string
	Values []Value
}

// Like tests a field against a SQL-style wildcard pattern.
type Like struct {
	Field   string
	Pattern string
}

// Matches tests a field against a regular expression.
type Matches struct {
	Field string
	Regex string
}

// InRange tests that a field lies within [Low, High].
type InRange struct {
	Field string
	Low   Value
	High  Value
}

// NotInRange tests that a field lies outside [Low, High].
type NotInRange struct {
	Field string
	Low   Value
	High  Value
}

// HasAttribute tests that the evaluated entity carries an attribute at all.
type HasAttribute struct {
	Attribute string
}

// TemporalComparison tests a date-valued field against an instant.
type TemporalComparison struct {
	Field string
	Op    CompareOp
	Time  time.Time
}

// And is the conjunction of exactly two conditions.
type And struct {
	Left  Condition
	Right Condition
}

// Or is the disjunction of exactly two conditions.
type Or struct {
	Left  Condition
	Right Condition
}

// Not negates a single condition.
type Not struct {
	Inner Condition
}

func (*Comparison) condNode()         {}
func (*Between) condNode()            {}
func (*In) condNode()                 {}
func (*Like) condNode()               {}
func (*Matches) condNode()            {}
func (*InRange) condNode()            {}
func (*NotInRange) condNode()         {}
func (*HasAttribute) condNode()       {}
func (*TemporalComparison) condNode() {}
func (*And) condNode()                {}
func (*Or) condNode()                 {}
func (*Not) condNode()                {}

func (c *Comparison) Clone() Condition {
	cp := *c
	return &cp
}

func (c *Between) Clone() Condition {
	cp := *c
	return &cp
}

func (c *In) Clone() Condition {
	cp := *c
	cp.Values = append([]Value(nil), c.Values...)
	return &cp
}

func (c *Like) Clone() Condition {
	cp := *c
	return &cp
}

func (c *Matches) Clone() Condition {
	cp := *c
	return &cp
}

func (c *InRange) Clone() Condition {
	cp := *c
	return &cp
}

func (c *NotInRange) Clone() Condition {
	cp := *c
	return &cp
}

func (c *HasAttribute) Clone() Condition {
	cp := *c
	return &cp
}

func (c *TemporalComparison) Clone() Condition {
	cp := *c
	return &cp
}

func (c *And) Clone() Condition {
	return &And{Left: c.Left.Clone(), Right: c.Right.Clone()}
}

func (c *Or) Clone() Condition {
	return &Or{Left: c.Left.Clone(), Right: c.Right.Clone()}
}

func (c *Not) Clone() Condition {
	return &Not{Inner: c.Inner.Clone()}
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Field, c.Op, c.Value)
}

func (c *Between) String() string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", c.Field, c.Min, c.Max)
}

func (c *In) String() string {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s IN (%s)", c.Field, strings.Join(parts, ", "))
}

func (c *Like) String() string {
	return fmt.Sprintf("%s LIKE %q", c.Field, c.Pattern)
}

func (c *Matches) String() string {
	return fmt.Sprintf("%s MATCHES /%s/", c.Field, c.Regex)
}

func (c *InRange) String() string {
	return fmt.Sprintf("%s IN RANGE [%s, %s]", c.Field, c.Low, c.High)
}

func (c *NotInRange) String() string {
	return fmt.Sprintf("%s NOT IN RANGE [%s, %s]", c.Field, c.Low, c.High)
}

func (c *HasAttribute) String() string {
	return fmt.Sprintf("HAS %s", c.Attribute)
}

func (c *TemporalComparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Field, c.Op, c.Time.UTC().Format(time.RFC3339))
}

func (c *And) String() string {
	return fmt.Sprintf("(%s AND %s)", c.Left, c.Right)
}

func (c *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", c.Left, c.Right)
}

func (c *Not) String() string {
	return fmt.Sprintf("NOT %s", c.Inner)
}

// EqualConditions reports structural equality of two condition trees.
func EqualConditions(a, b Condition) bool {
	switch x := a.(type) {
	case *Comparison:
		y, ok := b.(*Comparison)
		return ok && x.Field == y.Field && x.Op == y.Op && x.Value.Equal(y.Value)
	case *Between:
		y, ok := b.(*Between)
		return ok && x.Field == y.Field && x.Min.Equal(y.Min) && x.Max.Equal(y.Max)
	case *In:
		y, ok := b.(*In)
		if !ok || x.Field != y.Field || len(x.Values) != len(y.Values) {
			return false
		}
		for i := range x.Values {
			if !x.Values[i].Equal(y.Values[i]) {
				return false
			}
		}
		return true
	case *Like:
		y, ok := b.(*Like)
		return ok && x.Field == y.Field && x.Pattern == y.Pattern
	case *Matches:
		y, ok := b.(*Matches)
		return ok && x.Field == y.Field && x.Regex == y.Regex
	case *InRange:
		y, ok := b.(*InRange)
		return ok && x.Field == y.Field && x.Low.Equal(y.Low) && x.High.Equal(y.High)
	case *NotInRange:
		y, ok := b.(*NotInRange)
		return ok && x.Field == y.Field && x.Low.Equal(y.Low) && x.High.Equal(y.High)
	case *HasAttribute:
		y, ok := b.(*HasAttribute)
		return ok && x.Attribute == y.Attribute
	case *TemporalComparison:
		y, ok := b.(*TemporalComparison)
		return ok && x.Field == y.Field && x.Op == y.Op && x.Time.Equal(y.Time)
	case *And:
		y, ok := b.(*And)
		return ok && EqualConditions(x.Left, y.Left) && EqualConditions(x.Right, y.Right)
	case *Or:
		y, ok := b.(*Or)
		return ok && EqualConditions(x.Left, y.Left) && EqualConditions(x.Right, y.Right)
	case *Not:
		y, ok := b.(*Not)
		return ok && EqualConditions(x.Inner, y.Inner)
	}
	return false
}
