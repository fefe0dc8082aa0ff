package entity

type AuthorizationRule struct {
	RuleID     uint    `gorm:"column:rule_id;primaryKey;autoIncrement" json:"rule_id"`
	RoleID     uint    `gorm:"column:role_id;not null;default:0" json:"role_id"`
	ResourceID *string `gorm:"column:resource_id;type:varchar(255)" json:"resource_id,omitempty"`
	Privileges *string `gorm:"column:privileges;type:varchar(20)" json:"privileges,omitempty"`
	Permission *string `gorm:"column:permission;type:varchar(10)" json:"permission,omitempty"`
}

func (AuthorizationRule) TableName() string {
	return "authorization_rule"
}
