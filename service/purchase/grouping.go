package purchase

// Group is one display card: a product and the row indices that belong to it.
type Group struct {
	ProductID uint  `json:"product_id"`
	Indices   []int `json:"indices"`
}

// GroupByProduct derives the display grouping from the row product IDs.
// Groups appear in first-occurrence order; membership preserves row order.
// Rows with productID 0 (nothing selected yet) are never merged: each one is
// its own group so its selectors stay independently editable.
// Pure derivation: the input is never reordered or mutated.
func GroupByProduct(productIDs []uint) []Group {
	groups := make([]Group, 0, len(productIDs))
	byProduct := make(map[uint]int, len(productIDs))

	for i, pid := range productIDs {
		if pid == 0 {
			groups = append(groups, Group{ProductID: 0, Indices: []int{i}})
			continue
		}
		if gi, ok := byProduct[pid]; ok {
			groups[gi].Indices = append(groups[gi].Indices, i)
			continue
		}
		byProduct[pid] = len(groups)
		groups = append(groups, Group{ProductID: pid, Indices: []int{i}})
	}
	return groups
}
