package service

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/model"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/pkg/security"
	"Ladder/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserSimpleInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, userDTO *dto.UserDTO) error
	UpdatePassword(ctx context.Context, id uint64, pwDTO *dto.ChangePasswordDTO) error
	BanUser(ctx context.Context, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
}

type userServiceImpl struct {
	userRepo      repository.UserRepo
	roleRepo      repository.RoleRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo, userRolesRepo repository.UserRolesRepo) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	exist, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrUserUsernameExist
	}
	if regDTO.Email != nil {
		exist, err = s.userRepo.GetUserByEmail(ctx, *regDTO.Email)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUserEmailExist
		}
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: &regDTO.Username,
		Email:    regDTO.Email,
		Password: &passwordHash,
		Profile: model.Profile{
			DisplayName: regDTO.DisplayName,
			AvatarURL:   consts.DefaultAvatarURL,
		},
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	role, err := s.roleRepo.GetRoleByName(ctx, consts.RoleUser)
	if err != nil {
		return err
	}
	if role == nil {
		return UnExpectedError
	}
	return s.userRolesRepo.AddUserRole(ctx, user.ID, role.ID)
}

func (s *userServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.findUserByLoginCredentials(ctx, credDTO)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.IsBan {
		return "", ErrUserBan
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(credDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	roleNames, err := s.userRolesRepo.GetRoleNamesByUserID(ctx, user.ID)
	if err != nil {
		return "", err
	}
	return security.GenerateToken(user.ID, roleNames)
}

// Logout 把 token 签名挂进黑名单，有效期对齐 token 生命周期
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user)
}

// GetUserSimpleInfo 排行榜之外的轻量展示信息，带短缓存
func (s *userServiceImpl) GetUserSimpleInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	key := consts.UserSimpleInfoKey + strconv.FormatUint(id, 10)
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		var userDTO *dto.UserDTO
		if err := json.Unmarshal([]byte(cached), &userDTO); err == nil {
			return userDTO, nil
		}
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{
		UserID:      &user.ID,
		Username:    user.Username,
		DisplayName: &user.Profile.DisplayName,
		AvatarURL:   &user.Profile.AvatarURL,
	}

	if data, err := json.Marshal(userDTO); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(data), time.Hour)
	}
	return userDTO, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, id uint64, userDTO *dto.UserDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := copier.CopyWithOption(&user.Profile, userDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if err := s.userRepo.UpdateProfile(ctx, &user.Profile); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.UserSimpleInfoKey+strconv.FormatUint(id, 10))
	return nil
}

func (s *userServiceImpl) UpdatePassword(ctx context.Context, id uint64, pwDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password == nil {
		return ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(pwDTO.OldPassword, *user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	passwordHash, err := security.HashPassword(pwDTO.NewPassword)
	if err != nil {
		return err
	}
	user.Password = &passwordHash
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userServiceImpl) BanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, true)
}

func (s *userServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, false)
}

func (s *userServiceImpl) changeUserIsBanStatus(ctx context.Context, id uint64, isBan bool) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	user.IsBan = isBan
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userServiceImpl) findUserByLoginCredentials(ctx context.Context, credDTO *dto.CredentialDTO) (*model.User, error) {
	if credDTO.Username != nil && *credDTO.Username != "" {
		return s.userRepo.GetUserByUsername(ctx, *credDTO.Username)
	}
	if credDTO.Email != nil && *credDTO.Email != "" {
		return s.userRepo.GetUserByEmail(ctx, *credDTO.Email)
	}
	return nil, ErrMissingLoginCredentials
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	userDTO.DisplayName = &user.Profile.DisplayName
	userDTO.AvatarURL = &user.Profile.AvatarURL
	userDTO.Headline = user.Profile.Headline
	userDTO.Bio = user.Profile.Bio
	return userDTO, nil
}
