package cron

import (
	"context"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewReminderJob)

type Cron struct {
	logger      *zap.Logger
	server      *cron.Cron
	reminderJob *ReminderJob
}

// NewCron .
func NewCron(logger *zap.Logger, reminderJob *ReminderJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:      logger,
		server:      server,
		reminderJob: reminderJob,
	}
}

func (c *Cron) Run() error {
	// 每日 08:00 UTC 掃描進行中的排程
	if _, err := c.server.AddJob("0 0 8 * * *", c.reminderJob); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
