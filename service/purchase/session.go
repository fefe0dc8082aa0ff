package purchase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	catalogService "erp.GO/service/catalog"
)

// row is one ordered position in the PO form. Side state (variant list,
// catalog snapshot, loading flag) lives on the row itself, keyed by the row's
// identity rather than its position, so insertions and removals can never
// leave an annotation pointing at the wrong line.
type row struct {
	id        uint64
	productID uint
	variantID uint // 0 = none selected
	quantity  int
	unitPrice float64
	notes     string

	entry    *catalogService.Entry
	variants []catalogService.Variant
	loading  bool
	rev      uint64 // bumped on every product change; guards stale lookups
}

// RowView is a read-only snapshot of a row.
type RowView struct {
	ProductID uint                     `json:"product_id"`
	VariantID uint                     `json:"variant_id"`
	Quantity  int                      `json:"quantity"`
	UnitPrice float64                  `json:"unit_price"`
	Notes     string                   `json:"notes"`
	Loading   bool                     `json:"loading"`
	Variants  []catalogService.Variant `json:"variants,omitempty"`
}

// Session owns the line-item list of one PO form, its catalog cache, and the
// order-scoped vendor selection. All mutations go through the session lock;
// catalog fetches run outside it so a slow lookup never blocks other edits.
type Session struct {
	mu       sync.Mutex
	cache    *Cache
	vendorID uint
	nextID   uint64
	rows     []*row
}

// NewSession creates a form session with a single blank row (the form always
// shows at least one).
func NewSession(cache *Cache) *Session {
	s := &Session{cache: cache}
	s.rows = []*row{s.newRow()}
	return s
}

func (s *Session) newRow() *row {
	s.nextID++
	return &row{id: s.nextID, quantity: 1}
}

func indexError(i int) *ValidationError {
	return &ValidationError{Field: "line_items", Msg: fmt.Sprintf("row index %d out of range", i)}
}

// AddBlank inserts a default row at the given position. Position 0 prepends,
// which is how new rows reach the top of the form.
func (s *Session) AddBlank(at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at < 0 || at > len(s.rows) {
		return indexError(at)
	}
	r := s.newRow()
	s.rows = append(s.rows, nil)
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = r
	return nil
}

// AddVariantRow prepends a row pre-filled with the product and its base
// price, for picking a second variant of a product already on the order.
func (s *Session) AddVariantRow(ctx context.Context, productID uint) error {
	entry, err := s.cache.Entry(ctx, productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.newRow()
	r.productID = productID
	r.entry = entry
	r.variants = entry.Variants
	r.unitPrice = entry.BasePrice
	s.rows = append([]*row{r}, s.rows...)
	return nil
}

// Remove deletes the row at index. The last remaining row cannot be removed.
func (s *Session) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return indexError(index)
	}
	if len(s.rows) == 1 {
		return &ValidationError{Field: "line_items", Msg: "at least one line item is required"}
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	return nil
}

// SetProduct changes the product of a row. Product 0 clears the row back to
// unselected. Otherwise the catalog entry is fetched (memoized per session)
// and the row gets the variant list plus the base price as a provisional
// unit price. A fetch that completes after the row's selection has changed
// again is discarded, not applied.
func (s *Session) SetProduct(ctx context.Context, index int, productID uint) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.rows) {
		s.mu.Unlock()
		return indexError(index)
	}
	r := s.rows[index]
	r.rev++
	rev := r.rev
	if productID == 0 {
		r.productID = 0
		r.variantID = 0
		r.unitPrice = 0
		r.entry = nil
		r.variants = nil
		r.loading = false
		s.mu.Unlock()
		return nil
	}
	r.productID = productID
	r.variantID = 0
	r.entry = nil
	r.variants = nil
	r.loading = true
	s.mu.Unlock()

	entry, err := s.cache.Entry(ctx, productID)

	if cErr := s.commitCatalog(r, rev, productID, entry, err); cErr != nil {
		if errors.Is(cErr, errStaleResult) {
			return nil
		}
		return cErr
	}
	return nil
}

// commitCatalog applies a finished lookup to its row, unless the row was
// removed or re-targeted while the fetch was in flight.
func (s *Session) commitCatalog(r *row, rev uint64, productID uint, entry *catalogService.Entry, lookupErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.contains(r) || r.rev != rev || r.productID != productID {
		return errStaleResult
	}
	r.loading = false
	if lookupErr != nil {
		// Row stays without variants; re-selecting the product retries.
		return lookupErr
	}
	r.entry = entry
	r.variants = entry.Variants
	r.unitPrice = entry.BasePrice
	return nil
}

func (s *Session) contains(r *row) bool {
	for _, have := range s.rows {
		if have == r {
			return true
		}
	}
	return false
}

// SetVariant selects a variant on a row and resolves the unit price.
// Variant 0 clears the selection back to the base price.
func (s *Session) SetVariant(index int, variantID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return indexError(index)
	}
	r := s.rows[index]
	if variantID == 0 {
		r.variantID = 0
		r.unitPrice = ResolveUnitPrice(nil, s.vendorID, r.entry)
		return nil
	}
	variant := r.entry.FindVariant(variantID)
	if variant == nil {
		return &ValidationError{Field: "variant", Msg: fmt.Sprintf("variant %d does not belong to product %d", variantID, r.productID)}
	}
	r.variantID = variantID
	r.unitPrice = ResolveUnitPrice(variant, s.vendorID, r.entry)
	return nil
}

// SetVendor changes the order-scoped vendor and re-resolves the unit price
// of every row that has a variant chosen. The only operation that touches
// multiple rows in one call.
func (s *Session) SetVendor(vendorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendorID = vendorID
	for _, r := range s.rows {
		if r.variantID == 0 || r.entry == nil {
			continue
		}
		if variant := r.entry.FindVariant(r.variantID); variant != nil {
			r.unitPrice = ResolveUnitPrice(variant, vendorID, r.entry)
		}
	}
}

func (s *Session) SetQuantity(index int, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return indexError(index)
	}
	s.rows[index].quantity = quantity
	return nil
}

// SetUnitPrice overrides the resolved price; the field stays independently
// editable after resolution.
func (s *Session) SetUnitPrice(index int, unitPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return indexError(index)
	}
	s.rows[index].unitPrice = unitPrice
	return nil
}

func (s *Session) SetNotes(index int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return indexError(index)
	}
	s.rows[index].notes = notes
	return nil
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Session) VendorID() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendorID
}

// Row returns a snapshot of the row at index.
func (s *Session) Row(index int) (RowView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return RowView{}, indexError(index)
	}
	return s.rows[index].view(), nil
}

// Rows returns a snapshot of all rows in order.
func (s *Session) Rows() []RowView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]RowView, len(s.rows))
	for i, r := range s.rows {
		views[i] = r.view()
	}
	return views
}

func (r *row) view() RowView {
	return RowView{
		ProductID: r.productID,
		VariantID: r.variantID,
		Quantity:  r.quantity,
		UnitPrice: r.unitPrice,
		Notes:     r.notes,
		Loading:   r.loading,
		Variants:  r.variants,
	}
}

// Groups derives the display grouping from the current rows.
func (s *Session) Groups() []Group {
	s.mu.Lock()
	ids := make([]uint, len(s.rows))
	for i, r := range s.rows {
		ids[i] = r.productID
	}
	s.mu.Unlock()
	return GroupByProduct(ids)
}

// OrderTotal computes the running total over all rows plus the misc amount.
func (s *Session) OrderTotal(miscAmount float64) float64 {
	return OrderTotal(s.Rows(), miscAmount)
}

// entryFor exposes the cached catalog snapshot of a row to submission
// validation (variant-bearing products require a variant selection).
func (s *Session) entryFor(index int) *catalogService.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	return s.rows[index].entry
}
