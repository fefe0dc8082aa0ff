package entity

import "time"

// AdminUser is a console user.
type AdminUser struct {
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Firstname *string   `gorm:"column:firstname;type:varchar(32)" json:"firstname,omitempty"`
	Lastname  *string   `gorm:"column:lastname;type:varchar(32)" json:"lastname,omitempty"`
	Email     *string   `gorm:"column:email;type:varchar(128)" json:"email,omitempty"`
	Username  *string   `gorm:"column:username;type:varchar(40);uniqueIndex" json:"username,omitempty"`
	IsActive  int16     `gorm:"column:is_active;not null;default:1" json:"is_active"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Modified  time.Time `gorm:"column:modified;autoUpdateTime" json:"modified"`
}

func (AdminUser) TableName() string {
	return "admin_user"
}
