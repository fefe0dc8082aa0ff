package catalog

import (
	catalogEntity "erp.GO/model/entity/catalog"
)

// Entry is the product detail contract the PO form consumes: product fields
// plus the ordered variant list with per-vendor costs. Served by
// GET /api/catalog/products/:id/detail and by the remote commerce platform.
type Entry struct {
	ProductID uint      `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
	Currency  string    `json:"currency"`
	Variants  []Variant `json:"variants"`
}

type Variant struct {
	VariantID   uint         `json:"variant_id"`
	SKU         string       `json:"sku"`
	Name        string       `json:"name"`
	Price       *float64     `json:"price"`
	VendorCosts []VendorCost `json:"vendor_costs"`
}

type VendorCost struct {
	VendorID uint     `json:"vendor_id"`
	Cost     *float64 `json:"cost"`
}

// HasVariants reports whether the product carries variants at all
// (a variant selection is then mandatory on submission).
func (e *Entry) HasVariants() bool {
	return e != nil && len(e.Variants) > 0
}

// FindVariant returns the variant with the given ID, or nil.
func (e *Entry) FindVariant(variantID uint) *Variant {
	if e == nil {
		return nil
	}
	for i := range e.Variants {
		if e.Variants[i].VariantID == variantID {
			return &e.Variants[i]
		}
	}
	return nil
}

// EntryFromEntity maps a preloaded product entity to its wire form.
func EntryFromEntity(p *catalogEntity.Product) *Entry {
	entry := &Entry{
		ProductID: p.ProductID,
		SKU:       p.SKU,
		Name:      p.Name,
		BasePrice: p.BasePrice,
		Currency:  p.Currency,
		Variants:  make([]Variant, 0, len(p.Variants)),
	}
	for _, v := range p.Variants {
		variant := Variant{
			VariantID:   v.VariantID,
			SKU:         v.SKU,
			Name:        v.Name,
			Price:       v.Price,
			VendorCosts: make([]VendorCost, 0, len(v.VendorCosts)),
		}
		for _, c := range v.VendorCosts {
			variant.VendorCosts = append(variant.VendorCosts, VendorCost{VendorID: c.VendorID, Cost: c.Cost})
		}
		entry.Variants = append(entry.Variants, variant)
	}
	return entry
}
