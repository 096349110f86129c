package rel

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// splitNames splits each name on whitespace, so that "a b" and "a", "b"
// name the same fields.
func splitNames(names []string) []string {
	fields := make([]string, 0, len(names))
	for _, n := range names {
		fields = append(fields, strings.Fields(n)...)
	}
	return fields
}

// equal reports whether two field values are the same.  Numbers are equal
// when they compare equal, whatever their Go type, so int 1 and float64 1
// are the same value.  Other values must have the same dynamic type.
func equal(a, b interface{}) (eq bool) {
	if a == nil || b == nil {
		return a == b
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return false
		}
		if ia, ok := toInt(a); ok {
			if ib, ok := toInt(b); ok {
				return ia == ib
			}
		}
		return fa == fb
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// comparable structs and arrays can still hold incomparable values in
	// interface fields, which panic on ==
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

// tuplesEqual compares two key tuples of the same length.
func tuplesEqual(t1, t2 []interface{}) bool {
	for i := range t1 {
		if !equal(t1[i], t2[i]) {
			return false
		}
	}
	return true
}

// tupleIndex finds tuples that are equal by value in better than linear
// time.  Tuples are bucketed by tupleKey and then compared with equal
// inside a bucket.
type tupleIndex struct {
	buckets map[string][]int
	tups    [][]interface{}
}

func newTupleIndex() *tupleIndex {
	return &tupleIndex{buckets: make(map[string][]int)}
}

// find returns the position of tup in the index.
func (ti *tupleIndex) find(tup []interface{}) (int, bool) {
	return ti.lookup(tupleKey(tup), tup)
}

func (ti *tupleIndex) lookup(h string, tup []interface{}) (int, bool) {
	for _, i := range ti.buckets[h] {
		if len(ti.tups[i]) == len(tup) && tuplesEqual(ti.tups[i], tup) {
			return i, true
		}
	}
	return -1, false
}

// add returns the position of tup in the index, adding it if it is new.
// The second result is true when tup was added.
func (ti *tupleIndex) add(tup []interface{}) (int, bool) {
	h := tupleKey(tup)
	if i, ok := ti.lookup(h, tup); ok {
		return i, false
	}
	i := len(ti.tups)
	ti.tups = append(ti.tups, tup)
	ti.buckets[h] = append(ti.buckets[h], i)
	return i, true
}

// tupleKey is the bucket of a tuple.  Tuples that are equal always have the
// same key.
func tupleKey(tup []interface{}) string {
	var b strings.Builder
	for _, v := range tup {
		b.WriteString(valueKey(v))
		b.WriteByte(0)
	}
	return b.String()
}

// valueKey is the bucket of a single value.  Numbers are keyed by their
// float64 value with -0 folded into 0.  Values of other kinds share one
// bucket per type and are told apart by equal.
func valueKey(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return "s" + x
	case bool:
		return "b" + strconv.FormatBool(x)
	case time.Time:
		return "t" + x.String()
	}
	if f, ok := toFloat(v); ok {
		if f == 0 {
			f = 0
		}
		return "n" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%T", v)
}

// compare orders two values.  Numbers compare with numbers regardless of
// their Go type, strings with strings, bools with bools (false first) and
// times with times.  Anything else is a CompareError.
func compare(a, b interface{}) (int, error) {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, nil
			case !x:
				return -1, nil
			default:
				return 1, nil
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			switch {
			case x.Before(y):
				return -1, nil
			case x.After(y):
				return 1, nil
			default:
				return 0, nil
			}
		}
	default:
		if ia, aInt := toInt(a); aInt {
			if ib, bInt := toInt(b); bInt {
				return cmpOrdered(ia, ib), nil
			}
		}
		fa, aok := toFloat(a)
		fb, bok := toFloat(b)
		if aok && bok {
			return cmpOrdered(fa, fb), nil
		}
	}
	return 0, errors.WithStack(&CompareError{A: a, B: b})
}

// compareTuples orders two tuples lexicographically.
func compareTuples(t1, t2 []interface{}) (int, error) {
	for i := range t1 {
		c, err := compare(t1[i], t2[i])
		if err != nil || c != 0 {
			return c, err
		}
	}
	return 0, nil
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// toInt converts signed integer kinds to int64.  Unsigned kinds are left to
// toFloat so that large values do not wrap.
func toInt(v interface{}) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	}
	return 0, false
}

// toFloat converts any numeric kind to float64.
func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
