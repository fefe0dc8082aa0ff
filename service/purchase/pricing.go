package purchase

import (
	catalogService "erp.GO/service/catalog"
)

// ResolveUnitPrice resolves the unit price for a line. Precedence, highest
// first:
//  1. the variant's cost entry for the selected vendor, when the vendor is
//     set and the entry carries a non-nil cost
//  2. the variant's own price, when non-nil
//  3. the product base price (0 when no product either)
//
// With no variant selected the resolution short-circuits to the product base
// price. Every input combination yields exactly one number.
func ResolveUnitPrice(variant *catalogService.Variant, vendorID uint, product *catalogService.Entry) float64 {
	if variant == nil {
		if product == nil {
			return 0
		}
		return product.BasePrice
	}
	if vendorID != 0 {
		for _, vc := range variant.VendorCosts {
			if vc.VendorID == vendorID && vc.Cost != nil {
				return *vc.Cost
			}
		}
	}
	if variant.Price != nil {
		return *variant.Price
	}
	if product == nil {
		return 0
	}
	return product.BasePrice
}
