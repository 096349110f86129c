package rel

import (
	"reflect"
	"testing"
)

// test creation of relations and reading values out of them

func TestNew(t *testing.T) {
	recs := []Record{{"a": 1}, {"a": 2}}
	r := New(recs)
	recs[0] = Record{"a": 3}
	if vals := r.Param("a"); !reflect.DeepEqual(vals, []interface{}{1, 2}) {
		t.Errorf("New did not copy its input slice: %v", vals)
	}
	out := r.Records()
	out[1] = Record{"a": 4}
	if vals := r.Param("a"); !reflect.DeepEqual(vals, []interface{}{1, 2}) {
		t.Errorf("Records did not return a copy: %v", vals)
	}
	if r.Count() != 2 || r.Err() != nil {
		t.Errorf("New = %v", r)
	}

	r = FromMaps([]map[string]interface{}{{"a": 1}, {"b": 2}})
	if vals := r.Param("a"); !reflect.DeepEqual(vals, []interface{}{1, nil}) {
		t.Errorf("FromMaps has Param(a) => %v", vals)
	}
}

func TestParams(t *testing.T) {
	tups, err := New([]Record{{"a": 1, "b": 2}}).Params("a", "b")
	if err != nil {
		t.Fatalf("Params has error %s", err)
	}
	if want := [][]interface{}{{1, 2}}; !reflect.DeepEqual(tups, want) {
		t.Errorf("Params = %v, want %v", tups, want)
	}
	if _, err := New([]Record{{"a": 1}}).Params("a", "b"); !IsMissingField(err) {
		t.Errorf("Params on missing field has error %v", err)
	}
}

func TestRecord(t *testing.T) {
	rec := Record{"a": 1}
	if v, ok := rec.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := rec.Get("b"); ok {
		t.Errorf("Get(b) found a value")
	}
	if m := rec.Members(); m != nil {
		t.Errorf("Members of a plain record = %v", m)
	}
	rec1 := rec.clone(1)
	rec1["b"] = 2
	if _, ok := rec["b"]; ok {
		t.Errorf("clone shares storage with its source")
	}
}
