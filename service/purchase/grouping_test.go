package purchase

import (
	"reflect"
	"testing"
)

func TestGroupByProduct_FirstOccurrenceOrder(t *testing.T) {
	groups := GroupByProduct([]uint{5, 0, 5, 3})

	want := []Group{
		{ProductID: 5, Indices: []int{0, 2}},
		{ProductID: 0, Indices: []int{1}},
		{ProductID: 3, Indices: []int{3}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %+v, want %+v", groups, want)
	}
}

func TestGroupByProduct_ZerosNeverMerge(t *testing.T) {
	groups := GroupByProduct([]uint{0, 0, 0})

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3 (unassigned rows stay standalone)", len(groups))
	}
	for i, g := range groups {
		if g.ProductID != 0 {
			t.Errorf("group %d product = %d, want 0", i, g.ProductID)
		}
		if !reflect.DeepEqual(g.Indices, []int{i}) {
			t.Errorf("group %d indices = %v, want [%d]", i, g.Indices, i)
		}
	}
}

func TestGroupByProduct_Empty(t *testing.T) {
	if groups := GroupByProduct(nil); len(groups) != 0 {
		t.Errorf("groups of empty input = %+v, want none", groups)
	}
}

func TestGroupByProduct_CoversEveryIndexOnce(t *testing.T) {
	ids := []uint{2, 7, 2, 0, 7, 7, 0, 1}
	groups := GroupByProduct(ids)

	seen := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g.Indices {
			if seen[idx] {
				t.Fatalf("index %d appears in more than one group", idx)
			}
			seen[idx] = true
			if ids[idx] != g.ProductID {
				t.Errorf("index %d grouped under product %d, row has %d", idx, g.ProductID, ids[idx])
			}
		}
	}
	if len(seen) != len(ids) {
		t.Errorf("groups cover %d indices, want %d", len(seen), len(ids))
	}
}
