// restrict implements the operations that keep a subset of the records of
// a relation, in their original order.

package rel

import "github.com/pkg/errors"

// Filter creates a new relation with only the records for which p holds.
func (r *Relation) Filter(p Predicate) *Relation {
	if r.err != nil {
		return r
	}
	if p == nil {
		return withErr(errors.Wrap(ErrNilFunc, "filter"))
	}
	var recs []Record
	for i, rec := range r.recs {
		ok, err := p.Eval(rec, i)
		if err != nil {
			return withErr(err)
		}
		if ok {
			recs = append(recs, rec)
		}
	}
	return &Relation{recs: recs}
}

// TakeWhile creates a new relation with the leading records for which p
// holds, dropping everything from the first record where it does not.
func (r *Relation) TakeWhile(p Predicate) *Relation {
	if r.err != nil {
		return r
	}
	if p == nil {
		return withErr(errors.Wrap(ErrNilFunc, "takeWhile"))
	}
	n, err := r.prefix(p)
	if err != nil {
		return withErr(err)
	}
	return New(r.recs[:n])
}

// DropWhile creates a new relation without the leading records for which p
// holds.
func (r *Relation) DropWhile(p Predicate) *Relation {
	if r.err != nil {
		return r
	}
	if p == nil {
		return withErr(errors.Wrap(ErrNilFunc, "dropWhile"))
	}
	n, err := r.prefix(p)
	if err != nil {
		return withErr(err)
	}
	return New(r.recs[n:])
}

// prefix returns the number of leading records that satisfy p.
func (r *Relation) prefix(p Predicate) (int, error) {
	for i, rec := range r.recs {
		ok, err := p.Eval(rec, i)
		if err != nil {
			return 0, err
		}
		if !ok {
			return i, nil
		}
	}
	return len(r.recs), nil
}

// Skip creates a new relation without the first n records.
func (r *Relation) Skip(n int) *Relation {
	if r.err != nil {
		return r
	}
	return New(r.recs[clamp(n, len(r.recs)):])
}

// Take creates a new relation with at most the first n records.
func (r *Relation) Take(n int) *Relation {
	if r.err != nil {
		return r
	}
	return New(r.recs[:clamp(n, len(r.recs))])
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
