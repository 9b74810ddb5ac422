package cron

import (
	log "log/slog"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/job"
	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	trendingJob *job.TrendingJob
}

func NewCronManager(trendingJob *job.TrendingJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		trendingJob: trendingJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每 10 分钟刷一次热度榜
	if _, err := s.engine.AddJob("0 */10 * * * *", s.trendingJob); err != nil {
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
