// rename implements the rename operation.

package rel

import (
	"sort"

	"github.com/pkg/errors"
)

// Rename creates a new relation where fields are renamed according to
// names, which maps old names to new ones.  Fields not in names keep their
// name.  Two fields of one record may not end up with the same name.
func (r *Relation) Rename(names map[string]string) *Relation {
	if r.err != nil {
		return r
	}
	recs := make([]Record, len(r.recs))
	for i, rec := range r.recs {
		rec1 := make(Record, len(rec))
		for _, k := range sortedKeys(rec) {
			k1, ok := names[k]
			if !ok {
				k1 = k
			}
			if _, dup := rec1[k1]; dup {
				return withErr(errors.Errorf("rel: rename: record %d has two fields named '%s'", i, k1))
			}
			rec1[k1] = rec[k]
		}
		recs[i] = rec1
	}
	return &Relation{recs: recs}
}

// sortedKeys returns the field names of a record in sorted order.
func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
