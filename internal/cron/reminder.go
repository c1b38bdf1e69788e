package cron

import (
	"context"
	"fmt"
	"time"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"
	mongoRepo "simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/mail"
	"simpleeval/internal/telemetry"

	"go.uber.org/zap"
)

// ReminderJob 每日掃描進行中的評核排程，依提醒頻率寄信通知排程建立者。
// 狀態轉移一律由使用者操作，排程器不會自動改狀態。
type ReminderJob struct {
	logger       *zap.Logger
	trace        *telemetry.Trace
	scheduleRepo *mongoRepo.EvaluationScheduleRepository
	userRepo     *mongoRepo.UserRepository
	mailer       mail.Mailer
}

func NewReminderJob(
	logger *zap.Logger,
	trace *telemetry.Trace,
	scheduleRepo *mongoRepo.EvaluationScheduleRepository,
	userRepo *mongoRepo.UserRepository,
	mailer mail.Mailer,
) *ReminderJob {
	return &ReminderJob{
		logger:       logger,
		trace:        trace,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		mailer:       mailer,
	}
}

func (job *ReminderJob) Run() {
	ctx, _, end := job.trace.WithSpan(context.Background(), string(core.SpanCronReminder))

	schedules, err := job.scheduleRepo.ListActive(ctx)
	if err != nil {
		job.logger.Error("reminder job list active schedules failed", zap.Error(err))
		end(err)
		return
	}

	now := time.Now().UTC()
	for _, schedule := range schedules {
		// 截止日已過就不再提醒，收尾由使用者自行轉移狀態
		if schedule.EndDate.Before(now) {
			continue
		}
		if job.shouldRemind(schedule, now) {
			job.sendReminder(ctx, schedule)
		}
	}
	end(nil)
}

func (job *ReminderJob) shouldRemind(schedule *model.EvaluationSchedule, now time.Time) bool {
	switch schedule.ReminderFrequency {
	case core.ReminderDaily:
		return true
	case core.ReminderWeekly:
		return now.Weekday() == time.Monday
	default:
		return false
	}
}

func (job *ReminderJob) sendReminder(ctx context.Context, schedule *model.EvaluationSchedule) {
	creator, err := job.userRepo.GetByID(ctx, schedule.CreatedBy)
	if err != nil {
		job.logger.Warn("reminder skipped, creator lookup failed",
			zap.String("scheduleId", schedule.ID.Hex()),
			zap.Error(err))
		return
	}

	subject := fmt.Sprintf("評核提醒：%s", schedule.Name)
	body := fmt.Sprintf("排程「%s」仍在進行中，截止日為 %s，請確認評核進度。",
		schedule.Name, schedule.EndDate.Format("2006-01-02"))
	if err := job.mailer.Send(ctx, creator.Email, subject, body); err != nil {
		job.logger.Warn("reminder mail failed",
			zap.String("scheduleId", schedule.ID.Hex()),
			zap.Error(err))
		return
	}
	job.logger.Info("reminder mail sent",
		zap.String("scheduleId", schedule.ID.Hex()),
		zap.String("to", creator.Email))
}
