package core

// ScheduleStatus 評核排程生命週期狀態
type ScheduleStatus string

const (
	ScheduleStatusDraft     ScheduleStatus = "draft"
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCanceled  ScheduleStatus = "canceled"
)

var ScheduleStatuses = []ScheduleStatus{
	ScheduleStatusDraft,
	ScheduleStatusActive,
	ScheduleStatusCompleted,
	ScheduleStatusCanceled,
}

func IsValidScheduleStatus(status string) bool {
	for _, v := range ScheduleStatuses {
		if ScheduleStatus(status) == v {
			return true
		}
	}
	return false
}

// ReminderFrequency 提醒頻率
type ReminderFrequency string

const (
	ReminderDaily  ReminderFrequency = "daily"
	ReminderWeekly ReminderFrequency = "weekly"
	ReminderCustom ReminderFrequency = "custom"
)

func IsValidReminderFrequency(frequency string) bool {
	switch ReminderFrequency(frequency) {
	case ReminderDaily, ReminderWeekly, ReminderCustom:
		return true
	}
	return false
}

// CriteriaType 評分標準類型
type CriteriaType string

const (
	CriteriaStandard CriteriaType = "standard"
	CriteriaSmart    CriteriaType = "smart"
	CriteriaCustom   CriteriaType = "custom"
)

func IsValidCriteriaType(criteriaType string) bool {
	switch CriteriaType(criteriaType) {
	case CriteriaStandard, CriteriaSmart, CriteriaCustom:
		return true
	}
	return false
}
