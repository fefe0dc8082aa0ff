package modeltest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "erp.GO/model/entity"
	catalogEntity "erp.GO/model/entity/catalog"
	grnEntity "erp.GO/model/entity/grn"
	purchaseEntity "erp.GO/model/entity/purchase"
	salesEntity "erp.GO/model/entity/sales"
	vendorEntity "erp.GO/model/entity/vendor"
	warehouseEntity "erp.GO/model/entity/warehouse"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&catalogEntity.Product{},
		&catalogEntity.Variant{},
		&catalogEntity.VariantVendorCost{},
		&vendorEntity.Vendor{},
		&warehouseEntity.Warehouse{},
		&purchaseEntity.PurchaseOrder{},
		&purchaseEntity.PurchaseOrderItem{},
		&purchaseEntity.Payment{},
		&grnEntity.GoodsReceipt{},
		&grnEntity.GoodsReceiptItem{},
		&salesEntity.Order{},
		&salesEntity.OrderItem{},
		&salesEntity.Customer{},
		&entity.AdminUser{},
		&entity.AuthorizationRole{},
		&entity.AuthorizationRule{},
		&entity.OauthToken{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fp(v float64) *float64 { return &v }
