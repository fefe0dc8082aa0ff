package warehouse

import (
	"gorm.io/gorm"

	warehouseEntity "erp.GO/model/entity/warehouse"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) FindAll() ([]warehouseEntity.Warehouse, error) {
	var warehouses []warehouseEntity.Warehouse
	err := r.db.Order("warehouse_id").Find(&warehouses).Error
	return warehouses, err
}

func (r *WarehouseRepository) FindByID(id uint) (*warehouseEntity.Warehouse, error) {
	var w warehouseEntity.Warehouse
	if err := r.db.First(&w, "warehouse_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WarehouseRepository) Create(w *warehouseEntity.Warehouse) error {
	return r.db.Create(w).Error
}

func (r *WarehouseRepository) Update(w *warehouseEntity.Warehouse) error {
	return r.db.Save(w).Error
}

func (r *WarehouseRepository) Delete(id uint) error {
	return r.db.Delete(&warehouseEntity.Warehouse{}, "warehouse_id = ?", id).Error
}
