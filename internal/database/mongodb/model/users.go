package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"simpleeval/internal/core"
)

// User 可登入的系統使用者（非受評員工）
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Email          string             `json:"email" bson:"email"`
	FullName       string             `json:"fullName" bson:"fullName"`
	PasswordHash   string             `json:"-" bson:"passwordHash"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`
	Role           core.Role          `json:"role" bson:"role"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	LastLoginAt    *time.Time         `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "organizationId", Value: 1}},
		Options: options.Index().SetName("idx_organizationId"),
	},
}
