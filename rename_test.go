package rel

import (
	"reflect"
	"strings"
	"testing"
)

// tests for rename
func TestRename(t *testing.T) {
	var relTest = []struct {
		rel    *Relation
		expect []Record
	}{
		{New([]Record{{"a": 1, "b": 2}}).Rename(map[string]string{"a": "c"}), []Record{{"c": 1, "b": 2}}},
		{New([]Record{{"a": 1, "b": 2}}).Rename(map[string]string{"a": "b", "b": "a"}), []Record{{"a": 2, "b": 1}}},
		{New([]Record{{"a": 1}, {"b": 2}}).Rename(map[string]string{"b": "x"}), []Record{{"a": 1}, {"x": 2}}},
		{New([]Record{{"a": 1}}).Rename(nil), []Record{{"a": 1}}},
	}
	for i, tt := range relTest {
		if err := tt.rel.Err(); err != nil {
			t.Errorf("%d has Err() => %s", i, err)
			continue
		}
		if recs := tt.rel.Records(); !reflect.DeepEqual(recs, tt.expect) {
			t.Errorf("%d has Records() => %v, want %v", i, recs, tt.expect)
		}
	}

	err := New([]Record{{"a": 1, "b": 2}}).Rename(map[string]string{"a": "b"}).Err()
	if err == nil || !strings.Contains(err.Error(), "two fields named 'b'") {
		t.Errorf("Rename onto an existing field has Err() => %v", err)
	}
}
