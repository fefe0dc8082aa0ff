package warehouse

import "time"

type Warehouse struct {
	WarehouseID uint      `gorm:"column:warehouse_id;primaryKey;autoIncrement" json:"warehouse_id"`
	Code        string    `gorm:"column:code;type:varchar(32);not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	City        *string   `gorm:"column:city;type:varchar(64)" json:"city,omitempty"`
	Country     *string   `gorm:"column:country;type:varchar(2)" json:"country,omitempty"`
	IsActive    int16     `gorm:"column:is_active;not null;default:1" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Warehouse) TableName() string {
	return "warehouse"
}
