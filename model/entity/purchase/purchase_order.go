package purchase

import (
	"time"

	"gorm.io/datatypes"
)

// PO status lifecycle
const (
	StatusDraft     = "draft"
	StatusOrdered   = "ordered"
	StatusPartial   = "partial"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

type PurchaseOrder struct {
	PurchaseOrderID uint           `gorm:"column:purchase_order_id;primaryKey;autoIncrement" json:"purchase_order_id"`
	OrderNo         string         `gorm:"column:order_no;type:varchar(32);not null;uniqueIndex" json:"order_no"`
	VendorID        uint           `gorm:"column:vendor_id;not null;index" json:"vendor_id"`
	WarehouseID     uint           `gorm:"column:warehouse_id;not null;index" json:"warehouse_id"`
	Status          string         `gorm:"column:status;type:varchar(16);not null;default:'draft'" json:"status"`
	OrderDate       time.Time      `gorm:"column:order_date;not null" json:"order_date"`
	ExpectedDate    *time.Time     `gorm:"column:expected_date" json:"expected_date,omitempty"`
	MiscAmount      float64        `gorm:"column:misc_amount;type:decimal(20,6);not null;default:0" json:"misc_amount"`
	TotalAmount     float64        `gorm:"column:total_amount;type:decimal(20,6);not null;default:0" json:"total_amount"`
	Notes           *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Attributes      datatypes.JSON `gorm:"column:attributes" json:"attributes,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
	Payments []Payment           `gorm:"foreignKey:PurchaseOrderID" json:"payments,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_order"
}

type PurchaseOrderItem struct {
	ItemID          uint    `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	PurchaseOrderID uint    `gorm:"column:purchase_order_id;not null;index" json:"purchase_order_id"`
	ProductID       uint    `gorm:"column:product_id;not null;index" json:"product_id"`
	VariantID       *uint   `gorm:"column:variant_id;index" json:"variant_id,omitempty"`
	Quantity        int     `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitPrice       float64 `gorm:"column:unit_price;type:decimal(20,6);not null;default:0" json:"unit_price"`
	ReceivedQty     int     `gorm:"column:received_qty;not null;default:0" json:"received_qty"`
	Notes           *string `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (PurchaseOrderItem) TableName() string {
	return "purchase_order_item"
}
