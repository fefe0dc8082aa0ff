package grn

import "time"

// GoodsReceipt is one goods-received note against a purchase order.
type GoodsReceipt struct {
	ReceiptID       uint      `gorm:"column:receipt_id;primaryKey;autoIncrement" json:"receipt_id"`
	GrnNo           string    `gorm:"column:grn_no;type:varchar(32);not null;uniqueIndex" json:"grn_no"`
	PurchaseOrderID uint      `gorm:"column:purchase_order_id;not null;index" json:"purchase_order_id"`
	WarehouseID     uint      `gorm:"column:warehouse_id;not null;index" json:"warehouse_id"`
	ReceivedDate    time.Time `gorm:"column:received_date;not null" json:"received_date"`
	Notes           *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []GoodsReceiptItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

func (GoodsReceipt) TableName() string {
	return "goods_receipt"
}

type GoodsReceiptItem struct {
	ReceiptItemID       uint  `gorm:"column:receipt_item_id;primaryKey;autoIncrement" json:"receipt_item_id"`
	ReceiptID           uint  `gorm:"column:receipt_id;not null;index" json:"receipt_id"`
	PurchaseOrderItemID uint  `gorm:"column:purchase_order_item_id;not null;index" json:"purchase_order_item_id"`
	ProductID           uint  `gorm:"column:product_id;not null" json:"product_id"`
	VariantID           *uint `gorm:"column:variant_id" json:"variant_id,omitempty"`
	Quantity            int   `gorm:"column:quantity;not null" json:"quantity"`
}

func (GoodsReceiptItem) TableName() string {
	return "goods_receipt_item"
}
