// groupby implements the grouping operations, which turn a relation of
// records into a relation of groups.

package rel

import (
	"sort"

	"github.com/pkg/errors"
)

// GroupByNames creates a new relation with one record per distinct
// combination of values of the named fields.  Each group record holds the
// named fields and MembersField, the source records of the group in source
// order.  Groups are ordered by the first appearance of their key in the
// source, not sorted.  Every source record must have every named field.
func (r *Relation) GroupByNames(names ...string) *Relation {
	if r.err != nil {
		return r
	}
	names = splitNames(names)
	if len(names) == 0 {
		return withErr(errors.Wrap(ErrNoNames, "groupByNames"))
	}

	idx := newTupleIndex()
	var members [][]Record
	for i, rec := range r.recs {
		tup, err := rec.values("groupByNames", names, i)
		if err != nil {
			return withErr(err)
		}
		g, isNew := idx.add(tup)
		if isNew {
			members = append(members, nil)
		}
		members[g] = append(members[g], rec)
	}

	recs := make([]Record, len(idx.tups))
	for g, tup := range idx.tups {
		rec := make(Record, len(names)+1)
		for j, name := range names {
			rec[name] = tup[j]
		}
		rec[MembersField] = members[g]
		recs[g] = rec
	}
	return &Relation{recs: recs}
}

// GroupBy sorts the relation by the result of key and groups records with
// the same key together.  Each group record holds KeyField, the key, and
// MembersField.  Groups are in ascending key order; keys must be orderable
// against each other.
func (r *Relation) GroupBy(key func(Record) interface{}) *Relation {
	if r.err != nil {
		return r
	}
	if key == nil {
		return withErr(errors.Wrap(ErrNilFunc, "groupBy"))
	}

	keys := make([]interface{}, len(r.recs))
	order := make([]int, len(r.recs))
	for i, rec := range r.recs {
		keys[i] = key(rec)
		order[i] = i
	}
	var err error
	sort.SliceStable(order, func(i, j int) bool {
		c, cerr := compare(keys[order[i]], keys[order[j]])
		if cerr != nil && err == nil {
			err = cerr
		}
		return c < 0
	})
	if err != nil {
		return withErr(err)
	}

	var recs []Record
	var prev interface{}
	for n, i := range order {
		if n == 0 || !sameKey(prev, keys[i]) {
			recs = append(recs, Record{KeyField: keys[i], MembersField: []Record{}})
			prev = keys[i]
		}
		g := recs[len(recs)-1]
		g[MembersField] = append(g[MembersField].([]Record), r.recs[i])
	}
	return &Relation{recs: recs}
}

// sameKey reports whether two already sorted keys belong in one group.
func sameKey(a, b interface{}) bool {
	c, err := compare(a, b)
	return err == nil && c == 0
}
