// Package aggregate derives grouped views from a filtered table
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"vizdash/internal/core/table"
)

// Group is the distinct entity count for one group key
type Group struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DistinctCount counts distinct key values per group value
// group must be categorical, key may be either kind and missing keys are skipped
// the result is sorted by count descending then key ascending
func DistinctCount(t *table.Table, group, key string) ([]Group, error) {
	g, err := t.CategoryCol(group)
	if err != nil {
		return nil, err
	}
	kind, err := t.Kind(key)
	if err != nil {
		return nil, err
	}

	// one set per group, keyed by the string or float form of the entity
	seen := make(map[string]map[any]struct{})
	add := func(grp string, k any) {
		s, ok := seen[grp]
		if !ok {
			s = make(map[any]struct{})
			seen[grp] = s
		}
		s[k] = struct{}{}
	}

	switch kind {
	case table.Number:
		kc, _ := t.NumberCol(key)
		for i := 0; i < kc.Len(); i++ {
			v := kc.At(i)
			if math.IsNaN(v) {
				continue
			}
			add(g.At(i), v)
		}
	case table.Category:
		kc, _ := t.CategoryCol(key)
		for i := 0; i < kc.Len(); i++ {
			v := kc.At(i)
			if v == "" {
				continue
			}
			add(g.At(i), v)
		}
	default:
		return nil, fmt.Errorf("aggregate: column %q has kind %s", key, kind)
	}

	out := make([]Group, 0, len(seen))
	for k, s := range seen {
		out = append(out, Group{Key: k, Count: len(s)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// Total sums the group counts
func Total(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += g.Count
	}
	return n
}
