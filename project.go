// project implements the project operation, which keeps only some of the
// fields of each record.

package rel

// Project creates a new relation where each record has exactly the named
// fields.  A field that a record does not have is set to nil, so that the
// result has the same fields in every record.
func (r *Relation) Project(names ...string) *Relation {
	if r.err != nil {
		return r
	}
	names = splitNames(names)
	recs := make([]Record, len(r.recs))
	for i, rec := range r.recs {
		rec1 := make(Record, len(names))
		for _, name := range names {
			rec1[name] = rec[name]
		}
		recs[i] = rec1
	}
	return &Relation{recs: recs}
}
