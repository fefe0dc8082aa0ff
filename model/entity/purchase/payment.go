package purchase

import (
	"gorm.io/datatypes"
)

// Payment types accepted on a PO
const (
	PaymentTypeCash = 1
	PaymentTypeBank = 2
)

type Payment struct {
	PaymentID       uint           `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	PurchaseOrderID uint           `gorm:"column:purchase_order_id;not null;index" json:"purchase_order_id"`
	Amount          float64        `gorm:"column:amount;type:decimal(20,6);not null" json:"amount"`
	Type            int16          `gorm:"column:type;not null" json:"type"`
	PaymentDate     datatypes.Date `gorm:"column:payment_date" json:"payment_date"`
	Notes           *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (Payment) TableName() string {
	return "purchase_payment"
}
