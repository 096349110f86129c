package rel

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestSortByNames(t *testing.T) {
	var relTest = []struct {
		rel       *Relation
		field     string
		expectVal []interface{}
	}{
		{New([]Record{{"a": 3}, {"a": 1}, {"a": 2}}).SortByNames("a"), "a", []interface{}{1, 2, 3}},
		{New([]Record{{"a": 3}, {"a": 1.5}, {"a": 2}}).SortByNames("a"), "a", []interface{}{1.5, 2, 3}},
		// stable, and ordered by the later names within equal earlier ones
		{parts().SortByNames("City"), "PNO", []interface{}{1, 4, 6, 3, 2, 5}},
		{parts().SortByNames("City", "Weight"), "PNO", []interface{}{1, 4, 6, 3, 5, 2}},
		{parts().SortByNames("Weight PName"), "PNO", []interface{}{5, 1, 4, 2, 3, 6}},
		{parts().SortBy(func(a, b Record) bool { return a["PNO"].(int) > b["PNO"].(int) }), "PNO", []interface{}{6, 5, 4, 3, 2, 1}},
	}
	for i, tt := range relTest {
		if err := tt.rel.Err(); err != nil {
			t.Errorf("%d has Err() => %s", i, err)
			continue
		}
		if vals := tt.rel.Param(tt.field); !reflect.DeepEqual(vals, tt.expectVal) {
			t.Errorf("%d has %s => %v, want %v", i, tt.field, vals, tt.expectVal)
		}
	}

	// the source is left in its order
	r1 := parts()
	r1.SortByNames("City")
	if pnos := r1.Param("PNO"); !reflect.DeepEqual(pnos, []interface{}{1, 2, 3, 4, 5, 6}) {
		t.Errorf("SortByNames reordered its source: %v", pnos)
	}
}

func TestSortByNamesErrors(t *testing.T) {
	if err := New([]Record{{"a": 1}, {"b": 1}}).SortByNames("a").Err(); !IsMissingField(err) {
		t.Errorf("SortByNames on missing field has Err() => %v", err)
	}
	err := New([]Record{{"a": 1}, {"a": "x"}}).SortByNames("a").Err()
	if _, ok := errors.Cause(err).(*CompareError); !ok {
		t.Errorf("SortByNames on unorderable values has Err() => %v", err)
	}
	if err := parts().SortByNames().Err(); errors.Cause(err) != ErrNoNames {
		t.Errorf("SortByNames() has Err() => %v", err)
	}
	if err := parts().SortBy(nil).Err(); errors.Cause(err) != ErrNilFunc {
		t.Errorf("SortBy(nil) has Err() => %v", err)
	}
}
