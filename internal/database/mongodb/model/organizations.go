package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Organization 租戶根實體，其他資料皆以 organizationId 歸屬於單一組織
type Organization struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	TrialEndsAt time.Time          `json:"trialEndsAt" bson:"trialEndsAt"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Seats       int                `json:"seats" bson:"seats"`
	UsedSeats   int                `json:"usedSeats" bson:"usedSeats"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var OrganizationIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "ownerId", Value: 1}},
		Options: options.Index().SetName("idx_ownerId"),
	},
}
