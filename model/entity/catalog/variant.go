package catalog

// Variant is a SKU-level option of a product (color/size). Price is nullable:
// a nil price falls back to the product base price at resolution time.
type Variant struct {
	VariantID uint     `gorm:"column:variant_id;primaryKey;autoIncrement" json:"variant_id"`
	ProductID uint     `gorm:"column:product_id;not null;index" json:"product_id"`
	SKU       string   `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name      string   `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price     *float64 `gorm:"column:price;type:decimal(20,6)" json:"price"`
	Position  uint16   `gorm:"column:position;not null;default:0" json:"position"`

	VendorCosts []VariantVendorCost `gorm:"foreignKey:VariantID" json:"vendor_costs,omitempty"`
}

func (Variant) TableName() string {
	return "catalog_product_variant"
}

// VariantVendorCost is the negotiated cost of a variant at a specific vendor.
// Takes precedence over generic pricing when that vendor is selected on a PO.
type VariantVendorCost struct {
	CostID    uint     `gorm:"column:cost_id;primaryKey;autoIncrement" json:"cost_id"`
	VariantID uint     `gorm:"column:variant_id;not null;index:idx_variant_vendor,unique" json:"variant_id"`
	VendorID  uint     `gorm:"column:vendor_id;not null;index:idx_variant_vendor,unique" json:"vendor_id"`
	Cost      *float64 `gorm:"column:cost;type:decimal(20,6)" json:"cost"`
}

func (VariantVendorCost) TableName() string {
	return "catalog_variant_vendor_cost"
}
