package model

type UserRole struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_user_role,priority:1"`
	RoleID uint64 `gorm:"not null;uniqueIndex:idx_user_role,priority:2"`

	Role Role `gorm:"foreignKey:RoleID;references:ID"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
