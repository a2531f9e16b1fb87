package handler

import (
	"Ladder/internal/pkg/response"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetList(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit := int64(util.StrToUint64(c.DefaultQuery("limit", "20")))
	offset := int64(util.StrToUint64(c.DefaultQuery("offset", "0")))

	list, err := s.notificationSvc.GetNotificationList(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	msgID := c.Param("msg_id")
	if msgID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, msgID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"unread": count})
}
