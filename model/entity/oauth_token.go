package entity

import "time"

type OauthToken struct {
	EntityID   uint      `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	AdminID    *uint     `gorm:"column:admin_id" json:"admin_id,omitempty"`
	Type       string    `gorm:"column:type;type:varchar(16);not null" json:"type"`
	Token      string    `gorm:"column:token;type:varchar(32);not null;uniqueIndex" json:"token"`
	Secret     string    `gorm:"column:secret;type:varchar(128);not null" json:"secret"`
	Revoked    uint16    `gorm:"column:revoked;not null;default:0" json:"revoked"`
	Authorized uint16    `gorm:"column:authorized;not null;default:0" json:"authorized"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OauthToken) TableName() string {
	return "oauth_token"
}
