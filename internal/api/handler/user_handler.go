package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc      service.UserService
	userRolesSvc service.UserRolesService
}

func NewUserHandler(userSvc service.UserService, userRolesSvc service.UserRolesService) *UserHandler {
	return &UserHandler{
		userSvc:      userSvc,
		userRolesSvc: userRolesSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) GetUserSimpleInfoByID(c *gin.Context) {
	id := util.StrToUint64(c.Param("user_id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userDTO, err := s.userSvc.GetUserSimpleInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var userDTO dto.UserDTO
	if err := c.ShouldBind(&userDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&userDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.UpdateProfile(c.Request.Context(), userID, &userDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var pwDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.userSvc.UpdatePassword(c.Request.Context(), userID, &pwDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) BanUser(c *gin.Context) {
	id := util.StrToUint64(c.Param("user_id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.userSvc.BanUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UnbanUser(c *gin.Context) {
	id := util.StrToUint64(c.Param("user_id"))
	if id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.userSvc.UnBanUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetAllRoles(c *gin.Context) {
	roles, err := s.userRolesSvc.GetRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}

func (s *UserHandler) AddUserRole(c *gin.Context) {
	userID := util.StrToUint64(c.Query("user_id"))
	roleID := util.StrToUint64(c.Query("role_id"))
	if userID == 0 || roleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.userRolesSvc.AddRoleToUser(c.Request.Context(), userID, roleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) DeleteUserRole(c *gin.Context) {
	userID := util.StrToUint64(c.Query("user_id"))
	roleID := util.StrToUint64(c.Query("role_id"))
	if userID == 0 || roleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.userRolesSvc.DeleteRoleFromUser(c.Request.Context(), userID, roleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
