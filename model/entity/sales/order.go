package sales

import "time"

// Sales order status
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusComplete  = "complete"
	StatusCancelled = "cancelled"
)

type Order struct {
	OrderID     uint      `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	OrderNo     string    `gorm:"column:order_no;type:varchar(32);not null;uniqueIndex" json:"order_no"`
	CustomerID  uint      `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Status      string    `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
	TotalAmount float64   `gorm:"column:total_amount;type:decimal(20,6);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Order) TableName() string {
	return "sales_order"
}

type OrderItem struct {
	ItemID    uint    `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	OrderID   uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint    `gorm:"column:product_id;not null" json:"product_id"`
	VariantID *uint   `gorm:"column:variant_id" json:"variant_id,omitempty"`
	SKU       string  `gorm:"column:sku;type:varchar(64);not null" json:"sku"`
	Quantity  int     `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitPrice float64 `gorm:"column:unit_price;type:decimal(20,6);not null;default:0" json:"unit_price"`
}

func (OrderItem) TableName() string {
	return "sales_order_item"
}
