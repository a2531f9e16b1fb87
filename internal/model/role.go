package model

type Role struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_role_name"`
}

func (Role) TableName() string {
	return "roles"
}
