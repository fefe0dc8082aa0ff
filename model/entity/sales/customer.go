package sales

import "time"

type Customer struct {
	CustomerID uint      `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	Firstname  *string   `gorm:"column:firstname;type:varchar(64)" json:"firstname,omitempty"`
	Lastname   *string   `gorm:"column:lastname;type:varchar(64)" json:"lastname,omitempty"`
	Email      string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex" json:"email"`
	Phone      *string   `gorm:"column:phone;type:varchar(32)" json:"phone,omitempty"`
	City       *string   `gorm:"column:city;type:varchar(64)" json:"city,omitempty"`
	IsActive   int16     `gorm:"column:is_active;not null;default:1" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customer"
}
