package job

import (
	"Ladder/internal/api/config"
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/logger"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// WeeklySnapshotJob 每周一凌晨把上一周的榜单定格落库
// 多实例部署时靠分布式锁保证只跑一份
type WeeklySnapshotJob struct {
	leaderboardSvc service.LeaderboardService
}

func NewWeeklySnapshotJob(leaderboardSvc service.LeaderboardService) *WeeklySnapshotJob {
	return &WeeklySnapshotJob{leaderboardSvc: leaderboardSvc}
}

func (s *WeeklySnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	newUUID, err := uuid.NewUUID()
	if err != nil {
		return
	}
	lock, err := redis.TryLock(ctx, consts.SnapshotJobLock, newUUID.String(), time.Minute*10, 1)
	if err != nil || !lock {
		return
	}
	defer redis.UnLock(ctx, consts.SnapshotJobLock, newUUID.String())

	lastWeek := period.Current(time.Now().AddDate(0, 0, -7))
	limit := config.Cfg.Leaderboard.MaxLimit
	if limit <= 0 {
		limit = 100
	}

	entries, err := s.leaderboardSvc.SnapshotWeek(ctx, lastWeek.Label, limit)
	if err != nil {
		log.ErrorContext(ctx, "周榜快照失败", "week", lastWeek.Label, "err", err)
		return
	}
	log.InfoContext(ctx, "周榜快照完成", "week", lastWeek.Label, "entry_count", len(entries))
}
