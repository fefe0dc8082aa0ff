package grn

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	grnEntity "erp.GO/model/entity/grn"
	purchaseEntity "erp.GO/model/entity/purchase"
)

type GrnRepository struct {
	db *gorm.DB
}

func NewGrnRepository(db *gorm.DB) *GrnRepository {
	return &GrnRepository{db: db}
}

func (r *GrnRepository) NextGrnNo() (string, error) {
	var max uint
	err := r.db.Model(&grnEntity.GoodsReceipt{}).
		Select("COALESCE(MAX(receipt_id), 0)").Scan(&max).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("GRN-%06d", max+1), nil
}

// Receive persists a goods receipt and rolls the received quantities into the
// PO items, flipping the PO status to partial or received.
func (r *GrnRepository) Receive(receipt *grnEntity.GoodsReceipt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if receipt.ReceivedDate.IsZero() {
			receipt.ReceivedDate = time.Now()
		}
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}

		for _, item := range receipt.Items {
			res := tx.Model(&purchaseEntity.PurchaseOrderItem{}).
				Where("item_id = ? AND purchase_order_id = ?", item.PurchaseOrderItemID, receipt.PurchaseOrderID).
				Update("received_qty", gorm.Expr("received_qty + ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("receive: PO item %d not found on PO %d", item.PurchaseOrderItemID, receipt.PurchaseOrderID)
			}
		}

		// Recompute PO status from remaining quantities
		var open int64
		err := tx.Model(&purchaseEntity.PurchaseOrderItem{}).
			Where("purchase_order_id = ? AND received_qty < quantity", receipt.PurchaseOrderID).
			Count(&open).Error
		if err != nil {
			return err
		}
		status := purchaseEntity.StatusReceived
		if open > 0 {
			status = purchaseEntity.StatusPartial
		}
		return tx.Model(&purchaseEntity.PurchaseOrder{}).
			Where("purchase_order_id = ?", receipt.PurchaseOrderID).
			Update("status", status).Error
	})
}

func (r *GrnRepository) FindByID(id uint) (*grnEntity.GoodsReceipt, error) {
	var receipt grnEntity.GoodsReceipt
	err := r.db.Preload("Items").First(&receipt, "receipt_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *GrnRepository) FindAll(poID uint, limit, offset int) ([]grnEntity.GoodsReceipt, int64, error) {
	q := r.db.Model(&grnEntity.GoodsReceipt{})
	if poID > 0 {
		q = q.Where("purchase_order_id = ?", poID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var receipts []grnEntity.GoodsReceipt
	err := q.Limit(limit).Offset(offset).Order("receipt_id DESC").Find(&receipts).Error
	return receipts, count, err
}
