package wire

import (
	"Ladder/internal/api"
	"Ladder/internal/api/config"
	"Ladder/internal/api/handler"
	"Ladder/internal/job"
	"Ladder/internal/pkg/cron"
	"Ladder/internal/pkg/kafka"
	mongoPkg "Ladder/internal/pkg/mongo"
	"Ladder/internal/repository"
	"Ladder/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	roleRepo := repository.NewRoleRepository(db)
	activityRepo := repository.NewActivityRepo(db)
	activityRecordRepo := repository.NewActivityRecordRepo(db)
	growthCursorRepo := repository.NewGrowthCursorRepo(db)
	careerTaskRepo := repository.NewCareerTaskRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)
	badgeRepo := repository.NewBadgeRepo(db)
	instituteRepo := repository.NewInstituteRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	notificationRepo := mongoPkg.NewNotificationRepo(mongoDB)

	userService := service.NewUserService(userRepo, roleRepo, userRolesRepo)
	userRolesService := service.NewUserRolesService(roleRepo, userRolesRepo)
	activityService := service.NewActivityService(activityRepo, activityRecordRepo, growthCursorRepo, notificationRepo)
	leaderboardService := service.NewLeaderboardService(activityRepo, activityRecordRepo, userRepo, instituteRepo, snapshotRepo)
	verifyClient := service.NewVerifyClient()
	taskService := service.NewTaskService(careerTaskRepo, submissionRepo, activityService, verifyClient, notificationRepo)
	badgeService := service.NewBadgeService(badgeRepo, notificationRepo)
	instituteService := service.NewInstituteService(instituteRepo, activityRepo, activityRecordRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	recalcJob := job.NewLeaderboardRecalcJob(leaderboardService, badgeService)
	snapshotJob := job.NewWeeklySnapshotJob(leaderboardService)
	cronMgr := cron.NewCronManager(recalcJob, snapshotJob)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService, userRolesService),
		ActivityHandler:     handler.NewActivityHandler(activityService),
		LeaderboardHandler:  handler.NewLeaderboardHandler(leaderboardService, activityService),
		TaskHandler:         handler.NewTaskHandler(taskService),
		BadgeHandler:        handler.NewBadgeHandler(badgeService),
		InstituteHandler:    handler.NewInstituteHandler(instituteService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, activityService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
