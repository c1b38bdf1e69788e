package dto

import (
	"time"

	"simpleeval/internal/core"
)

type CriteriaLevelDto struct {
	Name       string `json:"name" binding:"required"`
	Percentage int    `json:"percentage"` // 寫入前一律夾制到 [0,100]
}

type EvaluationCriteriaDto struct {
	Type   core.CriteriaType  `json:"type" binding:"required,oneof=standard smart custom"`
	Levels []CriteriaLevelDto `json:"levels" binding:"required,min=1,dive"`
}

// 建立題目
type CreateQuestionDto struct {
	Text               string                `json:"text" binding:"required"`
	JobFunctionIDs     []string              `json:"jobFunctionIds" binding:"required,min=1"`
	EvaluationCriteria EvaluationCriteriaDto `json:"evaluationCriteria" binding:"required"`
	RewardValue        float64               `json:"rewardValue,omitempty" binding:"omitempty,min=0"`
}

// 更新題目
type UpdateQuestionDto struct {
	Text               *string                `json:"text,omitempty"`
	JobFunctionIDs     *[]string              `json:"jobFunctionIds,omitempty"`
	EvaluationCriteria *EvaluationCriteriaDto `json:"evaluationCriteria,omitempty"`
	RewardValue        *float64               `json:"rewardValue,omitempty" binding:"omitempty,min=0"`
}

type QuestionResponseDto struct {
	ID                 string                `json:"id"`
	OrganizationID     string                `json:"organizationId"`
	Text               string                `json:"text"`
	JobFunctionIDs     []string              `json:"jobFunctionIds"`
	EvaluationCriteria EvaluationCriteriaDto `json:"evaluationCriteria"`
	RewardValue        float64               `json:"rewardValue,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}
