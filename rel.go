// rel is a package that implements relational style operations over records
// held in memory.  A record is a map from field name to value and a relation
// is an ordered slice of records.  Records in one relation do not need to
// share the same fields.
//
// Relations are never modified in place.  Every operation builds a new
// relation, copying records before it adds or changes fields, so that a
// relation can be reused as the source of many chains.
//
package rel

// variable naming conventions
//
// r, r1, r2, ... all represent relations.  If there is an operation which
// has an output relation, the output relation will have the highest number
// after the r.
//
// rec, rec1, rec2, ... all represent records going through some
// transformation.
//
// recs, recs1, recs2, ... all represent the slices of records held by a
// relation.

// Record is a single row of a relation.
type Record map[string]interface{}

// Reserved field names for records produced by grouping.
const (
	// MembersField holds the []Record of a group's members, in source order.
	MembersField = "_members"

	// KeyField holds the computed key of a group produced by GroupBy.
	KeyField = "_key"
)

// Relation is an ordered slice of records together with the first error
// encountered while building it.
type Relation struct {
	recs []Record
	err  error
}

// New creates a new Relation from a slice of records.  The slice is copied,
// the records are not.
func New(recs []Record) *Relation {
	recs1 := make([]Record, len(recs))
	copy(recs1, recs)
	return &Relation{recs: recs1}
}

// FromMaps creates a new Relation from plain maps, as produced by decoders.
func FromMaps(ms []map[string]interface{}) *Relation {
	recs := make([]Record, len(ms))
	for i, m := range ms {
		recs[i] = Record(m)
	}
	return &Relation{recs: recs}
}

// withErr returns an empty relation that carries err.
func withErr(err error) *Relation {
	return &Relation{err: err}
}

// Err returns the first error encountered by the operations that produced r.
func (r *Relation) Err() error {
	return r.err
}

// Records returns a copy of the records of the relation.
func (r *Relation) Records() []Record {
	recs := make([]Record, len(r.recs))
	copy(recs, r.recs)
	return recs
}

// Count returns the number of records in the relation.
func (r *Relation) Count() int {
	return len(r.recs)
}

// Param returns the value of the named field for each record, with nil
// for records that do not have it.
func (r *Relation) Param(name string) []interface{} {
	vals := make([]interface{}, len(r.recs))
	for i, rec := range r.recs {
		vals[i] = rec[name]
	}
	return vals
}

// Params returns the values of the named fields for each record, as tuples
// in the order of names.  Unlike Param, every record must have every field.
func (r *Relation) Params(names ...string) ([][]interface{}, error) {
	if r.err != nil {
		return nil, r.err
	}
	tups := make([][]interface{}, len(r.recs))
	for i, rec := range r.recs {
		tup, err := rec.values("params", names, i)
		if err != nil {
			return nil, err
		}
		tups[i] = tup
	}
	return tups, nil
}

// Get returns the value of a field and whether it was present.
func (rec Record) Get(name string) (interface{}, bool) {
	v, ok := rec[name]
	return v, ok
}

// Members returns the member records of a group record, or nil if rec was
// not produced by grouping.
func (rec Record) Members() []Record {
	m, _ := rec[MembersField].([]Record)
	return m
}

// clone returns a shallow copy of the record with room for n more fields.
func (rec Record) clone(n int) Record {
	rec1 := make(Record, len(rec)+n)
	for k, v := range rec {
		rec1[k] = v
	}
	return rec1
}

// values looks up names in order, failing on the first absent one.  i is
// the index of the record, used for error reporting by op.
func (rec Record) values(op string, names []string, i int) ([]interface{}, error) {
	vals := make([]interface{}, len(names))
	for j, name := range names {
		v, ok := rec[name]
		if !ok {
			return nil, missing(op, name, i)
		}
		vals[j] = v
	}
	return vals, nil
}
