package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// CriteriaLevel 評分等級，percentage 一律落在 [0,100]
type CriteriaLevel struct {
	Name       string `json:"name" bson:"name"`
	Percentage int    `json:"percentage" bson:"percentage"`
}

type EvaluationCriteria struct {
	Type   core.CriteriaType `json:"type" bson:"type"`
	Levels []CriteriaLevel   `json:"levels" bson:"levels"`
}

// Question 評核題目
type Question struct {
	ID                 primitive.ObjectID   `json:"id" bson:"_id"`
	OrganizationID     primitive.ObjectID   `json:"organizationId" bson:"organizationId"`
	Text               string               `json:"text" bson:"text"`
	JobFunctionIDs     []primitive.ObjectID `json:"jobFunctionIds" bson:"jobFunctionIds"`
	EvaluationCriteria EvaluationCriteria   `json:"evaluationCriteria" bson:"evaluationCriteria"`
	RewardValue        float64              `json:"rewardValue,omitempty" bson:"rewardValue,omitempty"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updatedAt"`
}

var QuestionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}},
		Options: options.Index().SetName("idx_organizationId"),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "jobFunctionIds", Value: 1}},
		Options: options.Index().SetName("idx_organizationId_jobFunctionIds"),
	},
}
