package rel

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// tests for filter and the other operations which keep a part of a relation
func TestRestrict(t *testing.T) {
	heavy := Attribute("Weight").GE(17.0)
	var relTest = []struct {
		rel       *Relation
		expectPNO []interface{}
	}{
		{parts().Filter(Attribute("Color").EQ("Red")), []interface{}{1, 4, 6}},
		{parts().Filter(And(Attribute("Color").EQ("Red"), Attribute("City").EQ("London"))), []interface{}{1, 4, 6}},
		{parts().Filter(Not(Attribute("City").EQ("London"))), []interface{}{2, 3, 5}},
		{parts().Filter(heavy), []interface{}{2, 3, 6}},
		{parts().Filter(Attribute("PNO").GT(10)), []interface{}{}},
		{parts().Filter(FuncPred(func(rec Record) bool { return rec["PNO"].(int)%2 == 0 })), []interface{}{2, 4, 6}},
		{parts().TakeWhile(Attribute("PNO").LT(3)), []interface{}{1, 2}},
		{parts().TakeWhile(heavy), []interface{}{}},
		{parts().DropWhile(Attribute("PNO").LT(3)), []interface{}{3, 4, 5, 6}},
		{parts().DropWhile(Attribute("PNO").GT(0)), []interface{}{}},
		{parts().Skip(4), []interface{}{5, 6}},
		{parts().Skip(-1), []interface{}{1, 2, 3, 4, 5, 6}},
		{parts().Skip(10), []interface{}{}},
		{parts().Take(2), []interface{}{1, 2}},
		{parts().Take(10), []interface{}{1, 2, 3, 4, 5, 6}},
		{parts().Take(0), []interface{}{}},
	}
	for i, tt := range relTest {
		if err := tt.rel.Err(); err != nil {
			t.Errorf("%d has Err() => %s", i, err)
			continue
		}
		if pnos := tt.rel.Param("PNO"); !reflect.DeepEqual(pnos, tt.expectPNO) {
			t.Errorf("%d has PNO => %v, want %v", i, pnos, tt.expectPNO)
		}
	}

	// filtering on a field that a record lacks is an error
	r := New([]Record{{"a": 1}, {"b": 2}}).Filter(Attribute("a").EQ(1))
	if !IsMissingField(r.Err()) {
		t.Errorf("Filter on missing field has Err() => %v", r.Err())
	}
	// a nil predicate is an error, not a panic
	for _, tt := range []struct {
		op  string
		rel *Relation
	}{
		{"filter", parts().Filter(nil)},
		{"takeWhile", parts().TakeWhile(nil)},
		{"dropWhile", parts().DropWhile(nil)},
	} {
		if err := tt.rel.Err(); errors.Cause(err) != ErrNilFunc || !strings.Contains(err.Error(), tt.op) {
			t.Errorf("%s(nil) has Err() => %v", tt.op, err)
		}
	}
	// take while never looks past the first failing record
	r = New([]Record{{"a": 1}, {"a": 2}, {"b": 2}}).TakeWhile(Attribute("a").EQ(1))
	if r.Err() != nil || r.Count() != 1 {
		t.Errorf("TakeWhile = %v", r)
	}
}
