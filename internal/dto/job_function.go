package dto

import "time"

// 建立職能
type CreateJobFunctionDto struct {
	Name      string `json:"name" binding:"required"`
	ManagerID string `json:"managerId,omitempty"` // 主管員工 ID，可空
}

// 更新職能
type UpdateJobFunctionDto struct {
	Name      *string `json:"name,omitempty"`
	ManagerID *string `json:"managerId,omitempty"`
}

type JobFunctionResponseDto struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	ManagerID      string    `json:"managerId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
