package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// Activity 活動事件，append-only：repository 只提供 Create 與 List
type Activity struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id"`
	OrganizationID primitive.ObjectID  `json:"organizationId" bson:"organizationId"`
	UserID         primitive.ObjectID  `json:"userId" bson:"userId"`
	UserName       string              `json:"userName,omitempty" bson:"userName,omitempty"`
	Type           core.ActivityType   `json:"type" bson:"type"`
	Title          string              `json:"title" bson:"title"`
	Description    string              `json:"description" bson:"description"`
	Link           string              `json:"link,omitempty" bson:"link,omitempty"`
	EntityID       *primitive.ObjectID `json:"entityId,omitempty" bson:"entityId,omitempty"`
	Metadata       map[string]any      `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Timestamp      time.Time           `json:"timestamp" bson:"timestamp"`
}

var ActivityIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("idx_organizationId_timestamp"),
	},
}
