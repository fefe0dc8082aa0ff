package entity

// AuthorizationRole is either a role group (role_type 'G') or a user
// assignment into a group (role_type 'U', parent_id points at the group).
type AuthorizationRole struct {
	RoleID    uint   `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	ParentID  uint   `gorm:"column:parent_id;not null;default:0" json:"parent_id"`
	SortOrder uint16 `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	RoleType  string `gorm:"column:role_type;type:varchar(1);not null;default:'0'" json:"role_type"`
	UserID    uint   `gorm:"column:user_id;not null;default:0" json:"user_id"`
	RoleName  string `gorm:"column:role_name;type:varchar(50)" json:"role_name"`
}

func (AuthorizationRole) TableName() string {
	return "authorization_role"
}
