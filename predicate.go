// predicate defines logical predicates used in relation's Filter, TakeWhile
// and DropWhile

package rel

import (
	"fmt"
	"strings"
)

// Predicate is a boolean condition on a record.
type Predicate interface {
	// Eval evaluates the predicate on a record.  The index i is the
	// position of the record in its relation and is only used to report
	// errors.
	Eval(rec Record, i int) (bool, error)

	// Domain is the set of fields the predicate reads.
	Domain() []Attribute

	fmt.Stringer
}

// Attribute represents a particular field name in a relation.  It is the
// starting point for comparison predicates, as in
// Attribute("region").EQ("eu").
type Attribute string

// unionAttributes produces a union of two sets of attributes, without dups
// assuming that the input attributes are already unique.  This returns a
// copy and does not modify the inputs.
func unionAttributes(att1 []Attribute, att2 []Attribute) []Attribute {
	// For small sets of attributes (which should be typical!) this should be
	// faster than a map.
	att := make([]Attribute, len(att1))
	copy(att, att1)
Found:
	for _, v2 := range att2 {
		for _, v1 := range att1 {
			if v1 == v2 {
				continue Found
			}
		}
		att = append(att, v2)
	}
	return att
}

// FuncPred adapts a plain function to a Predicate.  It reads no declared
// fields and never fails.
type FuncPred func(Record) bool

// Eval evaluates the function on a record
func (p FuncPred) Eval(rec Record, i int) (bool, error) {
	return p(rec), nil
}

// Domain is empty because the fields used by the function are unknown.
func (p FuncPred) Domain() []Attribute {
	return nil
}

func (p FuncPred) String() string {
	return "func(Record)"
}

// Not predicate
func Not(p Predicate) NotPred {
	// Prefix not is a lot more comprehensible than postfix!
	return NotPred{p}
}

// NotPred represents a logical not of a predicate
type NotPred struct {
	P Predicate
}

func (p NotPred) String() string {
	return fmt.Sprintf("!(%v)", p.P)
}

// Domain is the set of fields the predicate reads.
func (p NotPred) Domain() []Attribute {
	return p.P.Domain()
}

// Eval evaluates the predicate on a record
func (p NotPred) Eval(rec Record, i int) (bool, error) {
	b, err := p.P.Eval(rec, i)
	return !b, err
}

// And combines predicates so that all of them must hold.  Evaluation stops
// at the first one that does not.
func And(ps ...Predicate) AndPred {
	return AndPred(ps)
}

// AndPred represents a logical and of predicates
type AndPred []Predicate

func (p AndPred) String() string {
	return joinPreds(p, " && ")
}

// Domain is the set of fields the predicate reads.
func (p AndPred) Domain() []Attribute {
	var att []Attribute
	for _, p1 := range p {
		att = unionAttributes(att, p1.Domain())
	}
	return att
}

// Eval evaluates the predicate on a record
func (p AndPred) Eval(rec Record, i int) (bool, error) {
	for _, p1 := range p {
		b, err := p1.Eval(rec, i)
		if err != nil || !b {
			return false, err
		}
	}
	return true, nil
}

// Or combines predicates so that at least one of them must hold.
// Evaluation stops at the first one that does.
func Or(ps ...Predicate) OrPred {
	return OrPred(ps)
}

// OrPred represents a logical or of predicates
type OrPred []Predicate

func (p OrPred) String() string {
	return joinPreds(p, " || ")
}

// Domain is the set of fields the predicate reads.
func (p OrPred) Domain() []Attribute {
	var att []Attribute
	for _, p1 := range p {
		att = unionAttributes(att, p1.Domain())
	}
	return att
}

// Eval evaluates the predicate on a record
func (p OrPred) Eval(rec Record, i int) (bool, error) {
	for _, p1 := range p {
		b, err := p1.Eval(rec, i)
		if err != nil || b {
			return b, err
		}
	}
	return false, nil
}

func joinPreds(ps []Predicate, sep string) string {
	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = "(" + p.String() + ")"
	}
	return strings.Join(strs, sep)
}

// CompPred represents a comparison between a field and a value.
type CompPred struct {
	Att Attribute
	Op  string
	Val interface{}
}

func (p CompPred) String() string {
	return fmt.Sprintf("%s %s %v", p.Att, p.Op, p.Val)
}

// Domain is the set of fields the predicate reads.
func (p CompPred) Domain() []Attribute {
	return []Attribute{p.Att}
}

// Eval evaluates the predicate on a record.  A record that does not have
// the field is an error.  Equality uses the same rules as grouping; the
// ordering operators fail on values that cannot be ordered.
func (p CompPred) Eval(rec Record, i int) (bool, error) {
	v, ok := rec[string(p.Att)]
	if !ok {
		return false, missing("filter", string(p.Att), i)
	}
	switch p.Op {
	case "==":
		return equal(v, p.Val), nil
	case "!=":
		return !equal(v, p.Val), nil
	}
	c, err := compare(v, p.Val)
	if err != nil {
		return false, err
	}
	switch p.Op {
	case "<":
		return c < 0, nil
	case "<=":
		return c <= 0, nil
	case ">":
		return c > 0, nil
	case ">=":
		return c >= 0, nil
	}
	return false, fmt.Errorf("rel: unknown comparison '%s'", p.Op)
}

// EQ creates an equality predicate from an attribute and a value
func (att Attribute) EQ(v interface{}) CompPred {
	return CompPred{att, "==", v}
}

// NE creates a not equal predicate from an attribute and a value
func (att Attribute) NE(v interface{}) CompPred {
	return CompPred{att, "!=", v}
}

// LT creates a less than predicate from an attribute and a value
func (att Attribute) LT(v interface{}) CompPred {
	return CompPred{att, "<", v}
}

// LE creates a less than or equal predicate from an attribute and a value
func (att Attribute) LE(v interface{}) CompPred {
	return CompPred{att, "<=", v}
}

// GT creates a greater than predicate from an attribute and a value
func (att Attribute) GT(v interface{}) CompPred {
	return CompPred{att, ">", v}
}

// GE creates a greater than or equal predicate from an attribute and a value
func (att Attribute) GE(v interface{}) CompPred {
	return CompPred{att, ">=", v}
}
