package model

import (
	"time"
)

type InstituteMember struct {
	ID          uint64 `gorm:"primaryKey"`
	InstituteID uint64 `gorm:"not null;uniqueIndex:idx_institute_member,priority:1"`
	UserID      uint64 `gorm:"not null;uniqueIndex:idx_institute_member,priority:2"`
	CreatedAt   time.Time
}

func (InstituteMember) TableName() string {
	return "institute_members"
}
