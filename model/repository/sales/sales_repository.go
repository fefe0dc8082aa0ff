package sales

import (
	"gorm.io/gorm"

	salesEntity "erp.GO/model/entity/sales"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

func (r *SalesRepository) FindAllOrders(status string, limit, offset int) ([]salesEntity.Order, int64, error) {
	q := r.db.Model(&salesEntity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var orders []salesEntity.Order
	if limit <= 0 {
		limit = -1
	}
	err := q.Preload("Customer").Preload("Items").Limit(limit).Offset(offset).Order("order_id DESC").Find(&orders).Error
	return orders, count, err
}

func (r *SalesRepository) FindOrderByID(id uint) (*salesEntity.Order, error) {
	var o salesEntity.Order
	err := r.db.Preload("Items").Preload("Customer").First(&o, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SalesRepository) CreateOrder(o *salesEntity.Order) error {
	return r.db.Create(o).Error
}

func (r *SalesRepository) UpdateOrderStatus(id uint, status string) error {
	return r.db.Model(&salesEntity.Order{}).
		Where("order_id = ?", id).
		Update("status", status).Error
}

func (r *SalesRepository) FindAllCustomers(limit, offset int) ([]salesEntity.Customer, int64, error) {
	var count int64
	if err := r.db.Model(&salesEntity.Customer{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var customers []salesEntity.Customer
	err := r.db.Limit(limit).Offset(offset).Order("customer_id").Find(&customers).Error
	return customers, count, err
}

func (r *SalesRepository) FindCustomerByID(id uint) (*salesEntity.Customer, error) {
	var c salesEntity.Customer
	if err := r.db.First(&c, "customer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SalesRepository) CreateCustomer(c *salesEntity.Customer) error {
	return r.db.Create(c).Error
}

func (r *SalesRepository) UpdateCustomer(c *salesEntity.Customer) error {
	return r.db.Save(c).Error
}
