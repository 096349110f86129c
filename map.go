// map implements the operations that derive new records from old ones:
// extension with computed fields and general record mapping.

package rel

import (
	"strings"

	"github.com/pkg/errors"
)

// Func computes a derived value.  It receives the values of the
// dependencies declared alongside it, in declaration order.
type Func func(args ...interface{}) interface{}

// Extension is a computed field.  Deps names the fields that Func reads;
// they are looked up on each record by name, so a record missing any of
// them is an error rather than a zero value.
type Extension struct {
	Name string
	Deps []string
	Func Func
}

// Ext creates an Extension which sets field name to the result of fn
// applied to the values of deps.
func Ext(name string, fn Func, deps ...string) Extension {
	return Extension{Name: name, Deps: deps, Func: fn}
}

// String representation of the extension, e.g. "hasVat(vat)"
func (e Extension) String() string {
	return e.Name + "(" + strings.Join(e.Deps, ", ") + ")"
}

// Extend creates a new relation where each record is a copy of the source
// record with the computed fields added.  Extensions are evaluated in the
// order given, each against the source record, and later ones win when two
// set the same name.  For group records the dependencies can name the key
// fields and MembersField.
func (r *Relation) Extend(exts ...Extension) *Relation {
	if r.err != nil {
		return r
	}
	for _, e := range exts {
		if e.Func == nil {
			return withErr(errors.Wrapf(ErrNilFunc, "extend %s", e.Name))
		}
	}
	recs := make([]Record, len(r.recs))
	for i, rec := range r.recs {
		rec1 := rec.clone(len(exts))
		for _, e := range exts {
			args, err := rec.values("extend", e.Deps, i)
			if err != nil {
				return withErr(err)
			}
			rec1[e.Name] = e.Func(args...)
		}
		recs[i] = rec1
	}
	return &Relation{recs: recs}
}

// Compute creates a new relation where each record is a copy of the source
// record with field name set to fn of the source record.  Compute is the
// escape hatch for functions that need fields which may be absent; Extend
// should be preferred.
func (r *Relation) Compute(name string, fn func(Record) interface{}) *Relation {
	if r.err != nil {
		return r
	}
	if fn == nil {
		return withErr(errors.Wrapf(ErrNilFunc, "compute %s", name))
	}
	recs := make([]Record, len(r.recs))
	for i, rec := range r.recs {
		rec1 := rec.clone(1)
		rec1[name] = fn(rec)
		recs[i] = rec1
	}
	return &Relation{recs: recs}
}

// Map creates a new relation from the results of fn applied to each record.
// fn must not modify its argument; it should return a new record instead.
func (r *Relation) Map(fn func(Record) Record) *Relation {
	if r.err != nil {
		return r
	}
	if fn == nil {
		return withErr(errors.Wrap(ErrNilFunc, "map"))
	}
	recs := make([]Record, len(r.recs))
	for i, rec := range r.recs {
		recs[i] = fn(rec)
	}
	return &Relation{recs: recs}
}
