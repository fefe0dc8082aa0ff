package purchase

import (
	"time"
)

// PaymentInput is one payment row on the PO form.
type PaymentInput struct {
	Amount      float64   `json:"amount"`
	Type        int16     `json:"type"` // 1=cash, 2=bank
	PaymentDate time.Time `json:"payment_date"`
	Notes       string    `json:"notes,omitempty"`
}

// SubmissionLineItem is one line of the outbound order payload.
type SubmissionLineItem struct {
	ProductID uint    `json:"product_id"`
	VariantID *uint   `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes,omitempty"`
}

// Submission is the payload handed to the order-persistence collaborator,
// already filtered and totalled.
type Submission struct {
	VendorID      uint                 `json:"vendor_id"`
	LineItems     []SubmissionLineItem `json:"line_items"`
	Payments      []PaymentInput       `json:"payments"`
	MiscAmount    float64              `json:"misc_amount"`
	OrderTotal    float64              `json:"order_total"`
	PaymentsTotal float64              `json:"payments_total"`
	Balance       float64              `json:"balance"`
}

// BuildSubmission validates the session and produces the outbound payload.
// On a validation failure nothing is returned and no persistence should be
// attempted. Rows with no product, non-positive quantity, or negative price
// are dropped silently as long as a valid row remains; payments with
// non-positive amounts or unknown types are dropped likewise.
func BuildSubmission(s *Session, payments []PaymentInput, miscAmount float64) (*Submission, error) {
	if s.VendorID() == 0 {
		return nil, &ValidationError{Field: "vendor", Msg: "a vendor must be selected"}
	}

	rows := s.Rows()
	items := make([]SubmissionLineItem, 0, len(rows))
	for i, r := range rows {
		if r.ProductID == 0 || r.Quantity <= 0 || r.UnitPrice < 0 {
			continue
		}
		if entry := s.entryFor(i); entry.HasVariants() && r.VariantID == 0 {
			return nil, &ValidationError{Field: "variant", Msg: "a variant must be selected for every product that has variants"}
		}
		item := SubmissionLineItem{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Notes:     r.Notes,
		}
		if r.VariantID != 0 {
			variantID := r.VariantID
			item.VariantID = &variantID
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, &ValidationError{Field: "line_items", Msg: "at least one line item with a product is required"}
	}

	kept := make([]PaymentInput, 0, len(payments))
	for _, p := range payments {
		if p.Amount <= 0 {
			continue
		}
		if p.Type != 1 && p.Type != 2 {
			continue
		}
		kept = append(kept, p)
	}

	orderTotal := miscAmount
	for _, item := range items {
		orderTotal += LineTotal(item.Quantity, item.UnitPrice)
	}
	paymentsTotal := PaymentsTotal(kept)

	return &Submission{
		VendorID:      s.VendorID(),
		LineItems:     items,
		Payments:      kept,
		MiscAmount:    miscAmount,
		OrderTotal:    orderTotal,
		PaymentsTotal: paymentsTotal,
		Balance:       Balance(orderTotal, paymentsTotal),
	}, nil
}
