package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// Evaluation 評核單（儀表板計數與活動牆 fallback 的資料來源）
type Evaluation struct {
	ID             primitive.ObjectID    `json:"id" bson:"_id"`
	OrganizationID primitive.ObjectID    `json:"organizationId" bson:"organizationId"`
	EmployeeID     primitive.ObjectID    `json:"employeeId" bson:"employeeId"`
	EmployeeName   string                `json:"employeeName,omitempty" bson:"employeeName,omitempty"`
	EvaluatorID    primitive.ObjectID    `json:"evaluatorId" bson:"evaluatorId"`
	JobFunctionID  primitive.ObjectID    `json:"jobFunctionId" bson:"jobFunctionId"`
	Status         core.EvaluationStatus `json:"status" bson:"status"`
	CreatedAt      time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt" bson:"updatedAt"`
}

var EvaluationIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_organizationId_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_organizationId_status"),
	},
}
