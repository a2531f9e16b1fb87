package cron

import (
	"Ladder/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	recalcJob         *job.LeaderboardRecalcJob
	weeklySnapshotJob *job.WeeklySnapshotJob
}

func NewCronManager(recalcJob *job.LeaderboardRecalcJob, weeklySnapshotJob *job.WeeklySnapshotJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		recalcJob:         recalcJob,
		weeklySnapshotJob: weeklySnapshotJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 脏用户重算每分钟跑一轮，集合为空时直接返回
	if _, err := s.engine.AddJob("0 * * * * *", s.recalcJob); err != nil {
		return err
	}
	// 每周一 00:05 定格上一周榜单
	if _, err := s.engine.AddJob("0 5 0 * * 1", s.weeklySnapshotJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
