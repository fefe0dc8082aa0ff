package modeltest

import (
	"testing"

	"gorm.io/gorm"

	purchaseEntity "erp.GO/model/entity/purchase"
	purchaseRepo "erp.GO/model/repository/purchase"
)

func seedOrder(t *testing.T, repo *purchaseRepo.PurchaseRepository, status string, total float64) *purchaseEntity.PurchaseOrder {
	t.Helper()
	no, err := repo.NextOrderNo()
	if err != nil {
		t.Fatalf("NextOrderNo: %v", err)
	}
	po := &purchaseEntity.PurchaseOrder{
		OrderNo:     no,
		VendorID:    3,
		WarehouseID: 1,
		Status:      status,
		TotalAmount: total,
		Items: []purchaseEntity.PurchaseOrderItem{
			{ProductID: 8, VariantID: fu(81), Quantity: 2, UnitPrice: 61},
			{ProductID: 7, Quantity: 1, UnitPrice: 50},
		},
	}
	if err := repo.Create(po); err != nil {
		t.Fatalf("create PO: %v", err)
	}
	return po
}

func fu(v uint) *uint { return &v }

func TestPurchaseRepository_NextOrderNo(t *testing.T) {
	repo := purchaseRepo.NewPurchaseRepository(testDB(t))

	no, err := repo.NextOrderNo()
	if err != nil {
		t.Fatalf("NextOrderNo: %v", err)
	}
	if no != "PO-000001" {
		t.Errorf("first order no = %s, want PO-000001", no)
	}

	seedOrder(t, repo, purchaseEntity.StatusDraft, 172)
	no, err = repo.NextOrderNo()
	if err != nil {
		t.Fatalf("NextOrderNo: %v", err)
	}
	if no != "PO-000002" {
		t.Errorf("second order no = %s, want PO-000002", no)
	}
}

func TestPurchaseRepository_CreatePreloadsOnFind(t *testing.T) {
	repo := purchaseRepo.NewPurchaseRepository(testDB(t))
	po := seedOrder(t, repo, purchaseEntity.StatusDraft, 172)

	if po.OrderDate.IsZero() {
		t.Error("Create should default OrderDate")
	}

	found, err := repo.FindByID(po.PurchaseOrderID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(found.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(found.Items))
	}
	if found.Items[0].VariantID == nil || *found.Items[0].VariantID != 81 {
		t.Errorf("first item variant = %v, want 81", found.Items[0].VariantID)
	}
}

func TestPurchaseRepository_UpdateStatusAndCounts(t *testing.T) {
	repo := purchaseRepo.NewPurchaseRepository(testDB(t))
	po := seedOrder(t, repo, purchaseEntity.StatusDraft, 172)
	seedOrder(t, repo, purchaseEntity.StatusDraft, 90)

	if err := repo.UpdateStatus(po.PurchaseOrderID, purchaseEntity.StatusOrdered); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	counts, err := repo.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[purchaseEntity.StatusDraft] != 1 || counts[purchaseEntity.StatusOrdered] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestPurchaseRepository_OutstandingBalance(t *testing.T) {
	db := testDB(t)
	repo := purchaseRepo.NewPurchaseRepository(db)

	open := seedOrder(t, repo, purchaseEntity.StatusOrdered, 172)
	payment := purchaseEntity.Payment{
		PurchaseOrderID: open.PurchaseOrderID, Amount: 72, Type: purchaseEntity.PaymentTypeCash,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}
	// Received and cancelled POs are settled and excluded from the balance.
	seedOrder(t, repo, purchaseEntity.StatusReceived, 999)
	seedOrder(t, repo, purchaseEntity.StatusCancelled, 500)

	balance, err := repo.OutstandingBalance()
	if err != nil {
		t.Fatalf("OutstandingBalance: %v", err)
	}
	if balance != 100 {
		t.Errorf("balance = %v, want 100 (172 total minus 72 paid)", balance)
	}
}

func TestPurchaseRepository_DeleteRemovesChildren(t *testing.T) {
	repo := purchaseRepo.NewPurchaseRepository(testDB(t))
	po := seedOrder(t, repo, purchaseEntity.StatusDraft, 172)

	if err := repo.Delete(po.PurchaseOrderID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(po.PurchaseOrderID); err != gorm.ErrRecordNotFound {
		t.Errorf("FindByID after delete = %v, want ErrRecordNotFound", err)
	}
}
