package dto

import (
	"time"

	"simpleeval/internal/core"
)

// 建立評核排程（一律以 draft 起始）
type CreateScheduleDto struct {
	Name              string                 `json:"name" binding:"required"`
	Description       string                 `json:"description,omitempty"`
	StartDate         time.Time              `json:"startDate" binding:"required"`
	EndDate           time.Time              `json:"endDate" binding:"required"`
	ReminderFrequency core.ReminderFrequency `json:"reminderFrequency" binding:"required,oneof=daily weekly custom"`
	JobFunctionIDs    []string               `json:"jobFunctionIds,omitempty"`
}

// 更新排程基本資料（狀態轉移走獨立端點）
type UpdateScheduleDto struct {
	Name              *string                 `json:"name,omitempty"`
	Description       *string                 `json:"description,omitempty"`
	StartDate         *time.Time              `json:"startDate,omitempty"`
	EndDate           *time.Time              `json:"endDate,omitempty"`
	ReminderFrequency *core.ReminderFrequency `json:"reminderFrequency,omitempty" binding:"omitempty,oneof=daily weekly custom"`
	JobFunctionIDs    *[]string               `json:"jobFunctionIds,omitempty"`
}

// 狀態轉移
type TransitionScheduleDto struct {
	Status core.ScheduleStatus `json:"status" binding:"required,oneof=draft active completed canceled"`
}

type ScheduleResponseDto struct {
	ID                string                 `json:"id"`
	OrganizationID    string                 `json:"organizationId"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	StartDate         time.Time              `json:"startDate"`
	EndDate           time.Time              `json:"endDate"`
	ReminderFrequency core.ReminderFrequency `json:"reminderFrequency"`
	JobFunctionIDs    []string               `json:"jobFunctionIds"`
	Status            core.ScheduleStatus    `json:"status"`
	CreatedBy         string                 `json:"createdBy"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}
