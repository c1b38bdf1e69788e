package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestWithUpdatedAt(t *testing.T) {
	t.Run("adds currentDate section", func(t *testing.T) {
		update := withUpdatedAt(bson.M{"$set": bson.M{"name": "foo"}})

		currentDate, ok := update["$currentDate"].(bson.M)
		if !ok {
			t.Fatalf("$currentDate missing: %v", update)
		}
		if currentDate["updatedAt"] != true {
			t.Errorf("updatedAt = %v, want true", currentDate["updatedAt"])
		}
		if _, ok := update["$set"]; !ok {
			t.Error("$set section should be preserved")
		}
	})

	t.Run("keeps existing currentDate fields", func(t *testing.T) {
		update := withUpdatedAt(bson.M{
			"$currentDate": bson.M{"lastLoginAt": true},
		})

		currentDate := update["$currentDate"].(bson.M)
		if currentDate["lastLoginAt"] != true {
			t.Error("existing currentDate field dropped")
		}
		if currentDate["updatedAt"] != true {
			t.Error("updatedAt not added")
		}
	})
}
