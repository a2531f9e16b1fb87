package job

import (
	"Ladder/internal/pkg/consts"
	"Ladder/internal/pkg/logger"
	"Ladder/internal/pkg/period"
	"Ladder/internal/pkg/redis"
	"Ladder/internal/pkg/util"
	"Ladder/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LeaderboardRecalcJob 消费脏用户集合，重算个人周合计并补发徽章
// 榜单缓存本身靠 TTL 过期，这里只负责把个人口径刷新到位
type LeaderboardRecalcJob struct {
	leaderboardSvc service.LeaderboardService
	badgeSvc       service.BadgeService
}

func NewLeaderboardRecalcJob(leaderboardSvc service.LeaderboardService, badgeSvc service.BadgeService) *LeaderboardRecalcJob {
	return &LeaderboardRecalcJob{
		leaderboardSvc: leaderboardSvc,
		badgeSvc:       badgeSvc,
	}
}

func (s *LeaderboardRecalcJob) Run() {
	traceID := "job-recalc-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.LeaderboardDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.LeaderboardDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "读取脏用户集合失败", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "脏用户集合格式异常", "err", err)
		return
	}

	week := period.Current(time.Now())
	for _, uid := range userIDs {
		_ = redis.DeleteKey(ctx, consts.UserWeeklyTotalKey+strconv.FormatUint(uid, 10))
		_ = redis.DeleteKey(ctx, consts.UserStreakKey+strconv.FormatUint(uid, 10))

		weeklyTotal, err := s.leaderboardSvc.UserWeeklyTotal(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "重算周合计失败", "uid", uid, "err", err)
			continue
		}
		if err := s.badgeSvc.EvaluateWeeklyBadges(ctx, uid, weeklyTotal, week); err != nil {
			log.ErrorContext(ctx, "周徽章评估失败", "uid", uid, "err", err)
		}

		allTimeTotal, err := s.leaderboardSvc.UserAllTimeTotal(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "重算累计合计失败", "uid", uid, "err", err)
			continue
		}
		if err := s.badgeSvc.EvaluateAllTimeBadges(ctx, uid, allTimeTotal); err != nil {
			log.ErrorContext(ctx, "累计徽章评估失败", "uid", uid, "err", err)
		}
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "清理处理中集合失败", "err", err)
	}

	log.InfoContext(ctx, "脏用户重算完成", "user_count", len(userIDs), "week", week.Label)
}
