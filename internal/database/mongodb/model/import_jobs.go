package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// ImportJob 批次匯入紀錄：讓部分失敗可觀察、可追查，而不是只能靠重跑推斷
type ImportJob struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id"`
	OrganizationID primitive.ObjectID   `json:"organizationId" bson:"organizationId"`
	CreatedBy      primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	FileName       string               `json:"fileName" bson:"fileName"`
	TotalRows      int                  `json:"totalRows" bson:"totalRows"`
	Imported       int                  `json:"imported" bson:"imported"`
	Skipped        int                  `json:"skipped" bson:"skipped"`
	Failed         int                  `json:"failed" bson:"failed"`
	Status         core.ImportJobStatus `json:"status" bson:"status"`
	Error          string               `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

var ImportJobIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_organizationId_createdAt"),
	},
}
