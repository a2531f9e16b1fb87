package api

import "Ladder/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	ActivityHandler     *handler.ActivityHandler
	LeaderboardHandler  *handler.LeaderboardHandler
	TaskHandler         *handler.TaskHandler
	BadgeHandler        *handler.BadgeHandler
	InstituteHandler    *handler.InstituteHandler
	NotificationHandler *handler.NotificationHandler
}
