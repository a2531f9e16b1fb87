package handler

import (
	"Ladder/internal/api/dto"
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type BadgeHandler struct {
	badgeSvc service.BadgeService
}

func NewBadgeHandler(badgeSvc service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeSvc: badgeSvc}
}

func (s *BadgeHandler) ListBadges(c *gin.Context) {
	badges, err := s.badgeSvc.ListBadges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	dtos := make([]*dto.BadgeDTO, 0, len(badges))
	for _, badge := range badges {
		badgeDTO := &dto.BadgeDTO{}
		if err := copier.Copy(badgeDTO, badge); err != nil {
			response.Error(c, service.UnExpectedError)
			return
		}
		dtos = append(dtos, badgeDTO)
	}
	response.Success(c, dtos)
}

func (s *BadgeHandler) ListMyBadges(c *gin.Context) {
	userID := c.GetUint64("user_id")
	s.listUserBadges(c, userID)
}

func (s *BadgeHandler) ListUserBadges(c *gin.Context) {
	userID := util.StrToUint64(c.Param("user_id"))
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	s.listUserBadges(c, userID)
}

func (s *BadgeHandler) listUserBadges(c *gin.Context, userID uint64) {
	userBadges, err := s.badgeSvc.ListUserBadges(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	dtos := make([]*dto.UserBadgeDTO, 0, len(userBadges))
	for _, ub := range userBadges {
		badgeDTO := dto.BadgeDTO{}
		if err := copier.Copy(&badgeDTO, &ub.Badge); err != nil {
			response.Error(c, service.UnExpectedError)
			return
		}
		dtos = append(dtos, &dto.UserBadgeDTO{
			Badge:     badgeDTO,
			WeekLabel: ub.WeekLabel,
			AwardedAt: ub.AwardedAt,
		})
	}
	response.Success(c, dtos)
}
