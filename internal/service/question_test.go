package service

import (
	"context"
	"testing"

	"simpleeval/internal/core"
	"simpleeval/internal/dto"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClampPercentage(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"negative clamps to zero", -5, 0},
		{"zero stays zero", 0, 0},
		{"in range unchanged", 50, 50},
		{"upper bound unchanged", 100, 100},
		{"over limit clamps to hundred", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPercentage(tt.input); got != tt.want {
				t.Errorf("ClampPercentage(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// 題目必須掛在至少一個職能底下，否則評核單永遠查不到它
func TestCreateQuestionRequiresJobFunction(t *testing.T) {
	s := &QuestionService{trace: &telemetry.Trace{}}

	tests := []struct {
		name           string
		jobFunctionIDs []string
	}{
		{"nil job functions", nil},
		{"empty job functions", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateQuestion(context.Background(), primitive.NewObjectID(), &dto.CreateQuestionDto{
				Text:           "溝通能力如何？",
				JobFunctionIDs: tt.jobFunctionIDs,
				EvaluationCriteria: dto.EvaluationCriteriaDto{
					Type:   core.CriteriaStandard,
					Levels: []dto.CriteriaLevelDto{{Name: "良好", Percentage: 80}},
				},
			})
			if err == nil {
				t.Fatal("expected error for question without job functions")
			}
		})
	}
}
