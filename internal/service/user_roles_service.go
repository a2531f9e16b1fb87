package service

import (
	"Ladder/internal/model"
	"Ladder/internal/repository"
	"context"
)

type UserRolesService interface {
	GetRoles(ctx context.Context) ([]*model.Role, error)
	AddRoleToUser(ctx context.Context, userID uint64, roleID uint64) error
	DeleteRoleFromUser(ctx context.Context, userID uint64, roleID uint64) error
}

type userRolesServiceImpl struct {
	roleRepo      repository.RoleRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserRolesService(roleRepo repository.RoleRepo, userRolesRepo repository.UserRolesRepo) UserRolesService {
	return &userRolesServiceImpl{
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *userRolesServiceImpl) GetRoles(ctx context.Context) ([]*model.Role, error) {
	return s.roleRepo.GetAllRoles(ctx)
}

func (s *userRolesServiceImpl) AddRoleToUser(ctx context.Context, userID uint64, roleID uint64) error {
	return s.userRolesRepo.AddUserRole(ctx, userID, roleID)
}

func (s *userRolesServiceImpl) DeleteRoleFromUser(ctx context.Context, userID uint64, roleID uint64) error {
	return s.userRolesRepo.DeleteUserRole(ctx, userID, roleID)
}
