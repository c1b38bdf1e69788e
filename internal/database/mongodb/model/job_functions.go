package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobFunction 職能分類，員工/題目/排程以 id 清單弱關聯
type JobFunction struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id"`
	OrganizationID primitive.ObjectID  `json:"organizationId" bson:"organizationId"`
	Name           string              `json:"name" bson:"name"`
	ManagerID      *primitive.ObjectID `json:"managerId,omitempty" bson:"managerId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var JobFunctionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("uniq_organizationId_name").SetUnique(true),
	},
}
