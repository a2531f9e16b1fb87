package api

import (
	"Ladder/internal/api/middleware"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/:user_id/simple", group.UserHandler.GetUserSimpleInfoByID)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateProfile)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("/:user_id/ban", group.UserHandler.BanUser)
				adminGroup.POST("/:user_id/unban", group.UserHandler.UnbanUser)
				adminGroup.GET("/roles", group.UserHandler.GetAllRoles)
				adminGroup.POST("/role", group.UserHandler.AddUserRole)
				adminGroup.DELETE("/role", group.UserHandler.DeleteUserRole)
			}
		}

		activityGroup := apiGroup.Group("/activity")
		{
			activityGroup.GET("/list", group.ActivityHandler.ListActivities)

			authGroup := activityGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/milestone", group.ActivityHandler.ReportMilestone)
				authGroup.POST("/growth", group.ActivityHandler.ReportGrowth)
				authGroup.GET("/streak", group.ActivityHandler.GetMyStreak)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.ActivityHandler.CreateActivity)
				adminGroup.PUT("/:activity_id", group.ActivityHandler.UpdateActivity)
			}
		}

		leaderboardGroup := apiGroup.Group("/leaderboard")
		{
			// 榜单公开可看，带 token 时顺带解析身份
			leaderboardGroup.Use(middleware.AuthOptionalMiddleware())
			leaderboardGroup.GET("/weekly", group.LeaderboardHandler.GetWeeklyLeaderboard)
			leaderboardGroup.GET("/alltime", group.LeaderboardHandler.GetAllTimeLeaderboard)
			leaderboardGroup.GET("/institute/:institute_id", group.LeaderboardHandler.GetInstituteLeaderboard)
			leaderboardGroup.GET("/history/:week", group.LeaderboardHandler.GetHistoryLeaderboard)

			authGroup := leaderboardGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/me", group.LeaderboardHandler.GetMyWeeklyTotal)
				authGroup.GET("/me/breakdown", group.LeaderboardHandler.GetMyWeeklyBreakdown)
			}
		}

		taskGroup := apiGroup.Group("/task")
		{
			taskGroup.GET("/list", group.TaskHandler.ListTasks)

			authGroup := taskGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/submit", group.TaskHandler.SubmitTask)
				authGroup.GET("/submissions", group.TaskHandler.ListMySubmissions)
			}

			reviewGroup := authGroup.Group("")
			reviewGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleInstituteAdmin))
			{
				reviewGroup.GET("/pending", group.TaskHandler.ListPendingSubmissions)
				reviewGroup.POST("/:submission_id/review", group.TaskHandler.ReviewSubmission)
				reviewGroup.POST("/:submission_id/verify", group.TaskHandler.AutoVerify)
			}
		}

		badgeGroup := apiGroup.Group("/badge")
		{
			badgeGroup.GET("/list", group.BadgeHandler.ListBadges)
			badgeGroup.GET("/user/:user_id", group.BadgeHandler.ListUserBadges)

			authGroup := badgeGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/mine", group.BadgeHandler.ListMyBadges)
			}
		}

		instituteGroup := apiGroup.Group("/institute")
		{
			authGroup := instituteGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/join", group.InstituteHandler.JoinInstitute)
				authGroup.GET("/mine", group.InstituteHandler.GetMyInstitute)
			}

			summaryGroup := authGroup.Group("")
			summaryGroup.Use(middleware.CheckRoles(consts.RoleAdmin, consts.RoleInstituteAdmin))
			{
				summaryGroup.GET("/:institute_id/summary", group.InstituteHandler.GetWeeklySummary)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.InstituteHandler.CreateInstitute)
			}
		}

		notificationGroup := apiGroup.Group("/notification")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.GetList)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.PUT("/:msg_id/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.PUT("/read/all", group.NotificationHandler.MarkAllAsRead)
		}
	}

	return r
}
