package repository

import (
	"Ladder/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRolesRepo interface {
	AddUserRole(ctx context.Context, userID, roleID uint64) error
	DeleteUserRole(ctx context.Context, userID, roleID uint64) error
	GetRoleNamesByUserID(ctx context.Context, userID uint64) ([]string, error)
}

type userRolesRepoImpl struct {
	db *gorm.DB
}

func NewUserRolesRepo(db *gorm.DB) UserRolesRepo {
	return &userRolesRepoImpl{db: db}
}

func (r *userRolesRepoImpl) AddUserRole(ctx context.Context, userID, roleID uint64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *userRolesRepoImpl) DeleteUserRole(ctx context.Context, userID, roleID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRole{}).Error
}

func (r *userRolesRepoImpl) GetRoleNamesByUserID(ctx context.Context, userID uint64) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.UserRole{}).
		Select("roles.name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
