package model

import (
	"time"
)

// Institute 机构（训练营/院校），管理员按机构维度看聚合数据
type Institute struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Code      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_institute_code"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Institute) TableName() string {
	return "institutes"
}
