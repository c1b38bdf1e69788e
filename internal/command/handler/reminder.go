package command

import (
	appCron "simpleeval/internal/cron"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ReminderHandler struct {
	logger      *zap.Logger
	reminderJob *appCron.ReminderJob
}

func NewReminderHandler(logger *zap.Logger, reminderJob *appCron.ReminderJob) *ReminderHandler {
	return &ReminderHandler{
		logger:      logger,
		reminderJob: reminderJob,
	}
}

// Sweep 立即執行一次排程提醒掃描，不等 cron 排程
func (handler *ReminderHandler) Sweep(cmd *cobra.Command, args []string) {
	cmd.Println("執行評核排程提醒掃描")
	handler.reminderJob.Run()
	cmd.Println("掃描完成")
}
