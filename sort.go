package rel

import (
	"sort"

	"github.com/pkg/errors"
)

// SortBy creates a new relation with the records ordered by less.  The sort
// is stable.
func (r *Relation) SortBy(less func(a, b Record) bool) *Relation {
	if r.err != nil {
		return r
	}
	if less == nil {
		return withErr(errors.Wrap(ErrNilFunc, "sortBy"))
	}
	r1 := New(r.recs)
	sort.SliceStable(r1.recs, func(i, j int) bool {
		return less(r1.recs[i], r1.recs[j])
	})
	return r1
}

// SortByNames creates a new relation with the records ordered by the values
// of the named fields, compared in order.  The sort is stable.  Every record
// must have every field and the values of a field must be orderable against
// each other.
func (r *Relation) SortByNames(names ...string) *Relation {
	if r.err != nil {
		return r
	}
	names = splitNames(names)
	if len(names) == 0 {
		return withErr(errors.Wrap(ErrNoNames, "sortByNames"))
	}
	tups := make([][]interface{}, len(r.recs))
	order := make([]int, len(r.recs))
	for i, rec := range r.recs {
		tup, err := rec.values("sortByNames", names, i)
		if err != nil {
			return withErr(err)
		}
		tups[i] = tup
		order[i] = i
	}

	var err error
	sort.SliceStable(order, func(i, j int) bool {
		c, cerr := compareTuples(tups[order[i]], tups[order[j]])
		if cerr != nil && err == nil {
			err = cerr
		}
		return c < 0
	})
	if err != nil {
		return withErr(err)
	}

	recs := make([]Record, len(order))
	for n, i := range order {
		recs[n] = r.recs[i]
	}
	return &Relation{recs: recs}
}
