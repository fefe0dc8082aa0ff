package purchase

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	purchaseEntity "erp.GO/model/entity/purchase"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// NextOrderNo allocates the next PO number (PO-000001 style).
func (r *PurchaseRepository) NextOrderNo() (string, error) {
	var max uint
	err := r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Select("COALESCE(MAX(purchase_order_id), 0)").Scan(&max).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PO-%06d", max+1), nil
}

// Create persists a PO with its items and payments in one transaction.
func (r *PurchaseRepository) Create(po *purchaseEntity.PurchaseOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if po.OrderDate.IsZero() {
			po.OrderDate = time.Now()
		}
		return tx.Create(po).Error
	})
}

func (r *PurchaseRepository) FindByID(id uint) (*purchaseEntity.PurchaseOrder, error) {
	var po purchaseEntity.PurchaseOrder
	err := r.db.
		Preload("Items").
		Preload("Payments").
		First(&po, "purchase_order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// FindAll returns a page of POs (no items preloaded) plus the total count.
// status filters when non-empty.
func (r *PurchaseRepository) FindAll(status string, limit, offset int) ([]purchaseEntity.PurchaseOrder, int64, error) {
	q := r.db.Model(&purchaseEntity.PurchaseOrder{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var pos []purchaseEntity.PurchaseOrder
	err := q.Limit(limit).Offset(offset).Order("purchase_order_id DESC").Find(&pos).Error
	return pos, count, err
}

func (r *PurchaseRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Where("purchase_order_id = ?", id).
		Update("status", status).Error
}

func (r *PurchaseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&purchaseEntity.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", id).Delete(&purchaseEntity.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&purchaseEntity.PurchaseOrder{}, "purchase_order_id = ?", id).Error
	})
}

// CountByStatus returns PO counts grouped by status (dashboard).
func (r *PurchaseRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

// OutstandingBalance sums order totals minus payments across open POs.
func (r *PurchaseRepository) OutstandingBalance() (float64, error) {
	var totals float64
	err := r.db.Model(&purchaseEntity.PurchaseOrder{}).
		Where("status NOT IN ?", []string{purchaseEntity.StatusCancelled, purchaseEntity.StatusReceived}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totals).Error
	if err != nil {
		return 0, err
	}
	var paid float64
	err = r.db.Model(&purchaseEntity.Payment{}).
		Joins("JOIN purchase_order ON purchase_order.purchase_order_id = purchase_payment.purchase_order_id").
		Where("purchase_order.status NOT IN ?", []string{purchaseEntity.StatusCancelled, purchaseEntity.StatusReceived}).
		Select("COALESCE(SUM(purchase_payment.amount), 0)").Scan(&paid).Error
	if err != nil {
		return 0, err
	}
	return totals - paid, nil
}
