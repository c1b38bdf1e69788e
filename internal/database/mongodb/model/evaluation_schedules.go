package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// EvaluationSchedule 評核排程（具名的評核期間）
// 生命週期：draft → active → completed；draft/active → canceled
type EvaluationSchedule struct {
	ID                primitive.ObjectID     `json:"id" bson:"_id"`
	OrganizationID    primitive.ObjectID     `json:"organizationId" bson:"organizationId"`
	Name              string                 `json:"name" bson:"name"`
	Description       string                 `json:"description,omitempty" bson:"description,omitempty"`
	StartDate         time.Time              `json:"startDate" bson:"startDate"`
	EndDate           time.Time              `json:"endDate" bson:"endDate"`
	ReminderFrequency core.ReminderFrequency `json:"reminderFrequency" bson:"reminderFrequency"`
	JobFunctionIDs    []primitive.ObjectID   `json:"jobFunctionIds" bson:"jobFunctionIds"`
	Status            core.ScheduleStatus    `json:"status" bson:"status"`
	CreatedBy         primitive.ObjectID     `json:"createdBy" bson:"createdBy"`
	CreatedAt         time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt" bson:"updatedAt"`
}

var EvaluationScheduleIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("idx_organizationId_updatedAt"),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_organizationId_status"),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "jobFunctionIds", Value: 1}},
		Options: options.Index().SetName("idx_organizationId_jobFunctionIds"),
	},
}
