// aggregate implements operations that reduce a relation to something
// other than a relation: single records, counts, sums and indexes.

package rel

import (
	"github.com/pkg/errors"
)

// Reduce folds the records of the relation into one, left to right,
// starting from the first record.
func (r *Relation) Reduce(fn func(acc, rec Record) Record) (Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if fn == nil {
		return nil, errors.Wrap(ErrNilFunc, "reduce")
	}
	if len(r.recs) == 0 {
		return nil, errors.WithStack(ErrEmpty)
	}
	acc := r.recs[0]
	for _, rec := range r.recs[1:] {
		acc = fn(acc, rec)
	}
	return acc, nil
}

// Max returns the first record with the largest key.
func (r *Relation) Max(key func(Record) interface{}) (Record, error) {
	return r.extreme("max", key, 1)
}

// Min returns the first record with the smallest key.
func (r *Relation) Min(key func(Record) interface{}) (Record, error) {
	return r.extreme("min", key, -1)
}

// extreme returns the first record whose key compares as sign against all
// the others.  op names the operation in errors.
func (r *Relation) extreme(op string, key func(Record) interface{}, sign int) (Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if key == nil {
		return nil, errors.Wrap(ErrNilFunc, op)
	}
	if len(r.recs) == 0 {
		return nil, errors.Wrap(ErrEmpty, op)
	}
	best, bestKey := r.recs[0], key(r.recs[0])
	for _, rec := range r.recs[1:] {
		k := key(rec)
		c, err := compare(k, bestKey)
		if err != nil {
			return nil, err
		}
		if c*sign > 0 {
			best, bestKey = rec, k
		}
	}
	return best, nil
}

// Sum adds up a numeric field over all records.  It is mostly useful inside
// extensions of groups, as in New(members).Sum("amount").
func (r *Relation) Sum(name string) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var s float64
	for i, rec := range r.recs {
		v, ok := rec[name]
		if !ok {
			return 0, missing("sum", name, i)
		}
		f, ok := toFloat(v)
		if !ok {
			return 0, errors.Errorf("rel: sum: record %d field '%s' is not a number: %v", i, name, v)
		}
		s += f
	}
	return s, nil
}

// Count is the number of records sharing one key.
type Count struct {
	Key interface{}
	N   int
}

// CountBy counts the records of each distinct key, in order of first
// appearance of the key.
func (r *Relation) CountBy(key func(Record) interface{}) ([]Count, error) {
	if r.err != nil {
		return nil, r.err
	}
	if key == nil {
		return nil, errors.Wrap(ErrNilFunc, "countBy")
	}
	idx := newTupleIndex()
	var counts []Count
	for _, rec := range r.recs {
		k := key(rec)
		g, isNew := idx.add([]interface{}{k})
		if isNew {
			counts = append(counts, Count{Key: k})
		}
		counts[g].N++
	}
	return counts, nil
}

// CountByNames counts the records of each distinct combination of values of
// the named fields.  With one name the key is the field value, otherwise it
// is a []interface{} of the values in the order of names.
func (r *Relation) CountByNames(names ...string) ([]Count, error) {
	if r.err != nil {
		return nil, r.err
	}
	names = splitNames(names)
	if len(names) == 0 {
		return nil, errors.Wrap(ErrNoNames, "countByNames")
	}
	idx := newTupleIndex()
	var counts []Count
	for i, rec := range r.recs {
		tup, err := rec.values("countByNames", names, i)
		if err != nil {
			return nil, err
		}
		g, isNew := idx.add(tup)
		if isNew {
			var k interface{} = tup
			if len(tup) == 1 {
				k = tup[0]
			}
			counts = append(counts, Count{Key: k})
		}
		counts[g].N++
	}
	return counts, nil
}

// Index maps unique keys to records.  It is built by Mapping and
// MappingByNames.
type Index struct {
	tups *tupleIndex
	recs []Record
}

// Get returns the record with the given key.  For an index built by
// MappingByNames the key is given as the field values in order.
func (ix *Index) Get(key ...interface{}) (Record, bool) {
	if i, ok := ix.tups.find(key); ok {
		return ix.recs[i], true
	}
	return nil, false
}

// Len returns the number of keys in the index.
func (ix *Index) Len() int {
	return len(ix.recs)
}

// Mapping builds an index from key to record.  Keys must be unique.
func (r *Relation) Mapping(key func(Record) interface{}) (*Index, error) {
	if r.err != nil {
		return nil, r.err
	}
	if key == nil {
		return nil, errors.Wrap(ErrNilFunc, "mapping")
	}
	ix := &Index{tups: newTupleIndex()}
	for _, rec := range r.recs {
		k := key(rec)
		if err := ix.add([]interface{}{k}, k, rec); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// MappingByNames builds an index from the values of the named fields to
// record.  Keys must be unique and every record must have every field.
func (r *Relation) MappingByNames(names ...string) (*Index, error) {
	if r.err != nil {
		return nil, r.err
	}
	names = splitNames(names)
	if len(names) == 0 {
		return nil, errors.Wrap(ErrNoNames, "mappingByNames")
	}
	ix := &Index{tups: newTupleIndex()}
	for i, rec := range r.recs {
		tup, err := rec.values("mappingByNames", names, i)
		if err != nil {
			return nil, err
		}
		if err := ix.add(tup, tup, rec); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

func (ix *Index) add(tup []interface{}, key interface{}, rec Record) error {
	if _, isNew := ix.tups.add(tup); !isNew {
		return errors.WithStack(&DuplicateKeyError{Key: key})
	}
	ix.recs = append(ix.recs, rec)
	return nil
}
