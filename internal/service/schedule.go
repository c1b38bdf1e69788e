package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// scheduleTransitions 狀態機白名單，表上沒有的轉移一律拒絕
var scheduleTransitions = map[core.ScheduleStatus][]core.ScheduleStatus{
	core.ScheduleStatusDraft:  {core.ScheduleStatusActive, core.ScheduleStatusCanceled},
	core.ScheduleStatusActive: {core.ScheduleStatusCompleted, core.ScheduleStatusCanceled},
}

// CanTransition 判斷狀態轉移是否允許；completed 與 canceled 為終態
func CanTransition(from core.ScheduleStatus, to core.ScheduleStatus) bool {
	for _, allowed := range scheduleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidScheduleWindow 評核期間須為未過期的正向區間
func ValidScheduleWindow(startDate time.Time, endDate time.Time, now time.Time) bool {
	return endDate.After(startDate) && endDate.After(now)
}

type ScheduleService struct {
	trace        *telemetry.Trace
	scheduleRepo *repository.EvaluationScheduleRepository
}

func NewScheduleService(trace *telemetry.Trace, scheduleRepo *repository.EvaluationScheduleRepository) *ScheduleService {
	return &ScheduleService{trace: trace, scheduleRepo: scheduleRepo}
}

// 建立排程，一律以 draft 起始
func (s *ScheduleService) CreateSchedule(ctx context.Context, orgID primitive.ObjectID, userID primitive.ObjectID, in *dto.CreateScheduleDto) (*dto.ScheduleResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !ValidScheduleWindow(in.StartDate, in.EndDate, time.Now().UTC()) {
		return nil, cErr.BadRequestBody("endDate must be in the future and after startDate")
	}
	if len(in.JobFunctionIDs) == 0 {
		return nil, cErr.BadRequestBody("at least one jobFunctionId is required")
	}
	jobFunctionIDs, err := hexToObjectIDs(in.JobFunctionIDs)
	if err != nil {
		return nil, cErr.BadRequestBody("invalid jobFunctionIds")
	}

	schedule := &model.EvaluationSchedule{
		OrganizationID:    orgID,
		Name:              in.Name,
		Description:       in.Description,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		ReminderFrequency: in.ReminderFrequency,
		JobFunctionIDs:    jobFunctionIDs,
		Status:            core.ScheduleStatusDraft,
		CreatedBy:         userID,
	}
	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateSchedule error")
	}
	return modelToScheduleResponseDto(created), nil
}

// 列出排程（updatedAt 新到舊），status 為空表示不過濾
func (s *ScheduleService) ListSchedules(ctx context.Context, orgID primitive.ObjectID, status string) ([]*dto.ScheduleResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if status != "" && !core.IsValidScheduleStatus(status) {
		return nil, cErr.BadRequestParams("invalid status filter")
	}
	schedules, err := s.scheduleRepo.ListByOrganization(ctx, orgID, core.ScheduleStatus(status))
	if err != nil {
		return nil, cErr.DatabaseError("database ListSchedules error")
	}
	s.trace.ApplyTraceAttributes(span, core.TraceTenantListMeta{
		OrganizationID: orgID.Hex(),
		Status:         status,
		ResultCount:    len(schedules),
	})
	resp := make([]*dto.ScheduleResponseDto, len(schedules))
	for i, schedule := range schedules {
		resp[i] = modelToScheduleResponseDto(schedule)
	}
	return resp, nil
}

// 依 id 查詢；跨組織存取視為不存在
func (s *ScheduleService) GetScheduleByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*dto.ScheduleResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	schedule, err := s.getOwnedSchedule(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return modelToScheduleResponseDto(schedule), nil
}

// 更新排程基本資料（狀態轉移走 TransitionSchedule）
func (s *ScheduleService) UpdateScheduleByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID, in *dto.UpdateScheduleDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	schedule, err := s.getOwnedSchedule(ctx, orgID, id)
	if err != nil {
		return err
	}

	update := bson.M{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Description != nil {
		update["description"] = *in.Description
	}
	if in.StartDate != nil {
		update["startDate"] = *in.StartDate
	}
	if in.EndDate != nil {
		update["endDate"] = *in.EndDate
	}
	if in.ReminderFrequency != nil {
		update["reminderFrequency"] = *in.ReminderFrequency
	}
	if in.JobFunctionIDs != nil {
		jobFunctionIDs, err := hexToObjectIDs(*in.JobFunctionIDs)
		if err != nil {
			return cErr.BadRequestBody("invalid jobFunctionIds")
		}
		update["jobFunctionIds"] = jobFunctionIDs
	}
	if len(update) == 0 {
		return nil
	}

	// 日期一致性以更新後的值檢查
	startDate := schedule.StartDate
	endDate := schedule.EndDate
	if in.StartDate != nil {
		startDate = *in.StartDate
	}
	if in.EndDate != nil {
		endDate = *in.EndDate
	}
	if !endDate.After(startDate) {
		return cErr.BadRequestBody("endDate must be after startDate")
	}

	matchedCount, err := s.scheduleRepo.UpdateByID(ctx, id, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("schedule not found")
		}
		return cErr.DatabaseError("database UpdateScheduleByID error")
	}
	if matchedCount == 0 {
		return cErr.NotFound("schedule not found")
	}
	return nil
}

// TransitionSchedule 狀態轉移；不在白名單即拒絕，寫入時以現況條件更新擋併發
func (s *ScheduleService) TransitionSchedule(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID, next core.ScheduleStatus) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	var returnedError error
	defer func() { end(returnedError) }()

	schedule, err := s.getOwnedSchedule(ctx, orgID, id)
	if err != nil {
		returnedError = err
		return returnedError
	}

	allowed := CanTransition(schedule.Status, next)
	s.trace.ApplyTraceAttributes(span, core.TraceScheduleTransitionMeta{
		ScheduleID: id.Hex(),
		From:       string(schedule.Status),
		To:         string(next),
		Allowed:    allowed,
	})
	if !allowed {
		returnedError = cErr.ScheduleStatusError(
			fmt.Sprintf("cannot transition schedule from %s to %s", schedule.Status, next))
		return returnedError
	}

	if _, err := s.scheduleRepo.UpdateStatus(ctx, id, schedule.Status, next); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// 狀態在讀取後被其他請求改掉
			returnedError = cErr.ScheduleStatusError(
				fmt.Sprintf("schedule status changed concurrently, expected %s", schedule.Status))
			return returnedError
		}
		returnedError = cErr.DatabaseError("database UpdateStatus error")
		return returnedError
	}
	return nil
}

// ActiveSchedulesForJobFunction 查某職能目前生效中的排程
func (s *ScheduleService) ActiveSchedulesForJobFunction(ctx context.Context, orgID primitive.ObjectID, jobFunctionID primitive.ObjectID) ([]*dto.ScheduleResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	schedules, err := s.scheduleRepo.ListActiveByJobFunction(ctx, orgID, jobFunctionID)
	if err != nil {
		return nil, cErr.DatabaseError("database ListActiveByJobFunction error")
	}
	resp := make([]*dto.ScheduleResponseDto, len(schedules))
	for i, schedule := range schedules {
		resp[i] = modelToScheduleResponseDto(schedule)
	}
	return resp, nil
}

// DeleteScheduleByID 直接刪除，不限定狀態
func (s *ScheduleService) DeleteScheduleByID(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.getOwnedSchedule(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.scheduleRepo.DeleteByID(ctx, id); err != nil {
		return cErr.DatabaseError("database DeleteScheduleByID error")
	}
	return nil
}

// CountActive 儀表板用
func (s *ScheduleService) CountActive(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	count, err := s.scheduleRepo.CountByStatus(ctx, orgID, core.ScheduleStatusActive)
	if err != nil {
		return 0, cErr.DatabaseError("database CountByStatus error")
	}
	return count, nil
}

// ScheduleCounts 各狀態排程數量
func (s *ScheduleService) ScheduleCounts(ctx context.Context, orgID primitive.ObjectID) (map[core.ScheduleStatus]int64, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	counts := make(map[core.ScheduleStatus]int64, len(core.ScheduleStatuses))
	for _, status := range core.ScheduleStatuses {
		count, err := s.scheduleRepo.CountByStatus(ctx, orgID, status)
		if err != nil {
			return nil, cErr.DatabaseError("database CountByStatus error")
		}
		counts[status] = count
	}
	return counts, nil
}

func (s *ScheduleService) getOwnedSchedule(ctx context.Context, orgID primitive.ObjectID, id primitive.ObjectID) (*model.EvaluationSchedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("schedule not found")
		}
		return nil, cErr.DatabaseError("database GetScheduleByID error")
	}
	if schedule.OrganizationID != orgID {
		return nil, cErr.NotFound("schedule not found")
	}
	return schedule, nil
}

func modelToScheduleResponseDto(m *model.EvaluationSchedule) *dto.ScheduleResponseDto {
	return &dto.ScheduleResponseDto{
		ID:                m.ID.Hex(),
		OrganizationID:    m.OrganizationID.Hex(),
		Name:              m.Name,
		Description:       m.Description,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		ReminderFrequency: m.ReminderFrequency,
		JobFunctionIDs:    objectIDsToHex(m.JobFunctionIDs),
		Status:            m.Status,
		CreatedBy:         m.CreatedBy.Hex(),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
