package catalog

import "time"

// Product is one catalog product (apparel/footwear style, variants carry the SKUs actually purchased).
type Product struct {
	ProductID uint      `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	SKU       string    `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	BasePrice float64   `gorm:"column:base_price;type:decimal(20,6);not null;default:0" json:"base_price"`
	Currency  string    `gorm:"column:currency;type:varchar(3);not null;default:'USD'" json:"currency"`
	IsActive  int16     `gorm:"column:is_active;not null;default:1" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "catalog_product"
}
