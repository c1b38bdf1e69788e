package service

import (
	"testing"
	"time"

	"simpleeval/internal/core"
	"simpleeval/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeFeed(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	evaluations := []*model.Evaluation{
		{ID: primitive.NewObjectID(), EmployeeName: "王小明", CreatedAt: base.Add(2 * time.Hour)},
		{ID: primitive.NewObjectID(), EmployeeName: "李小華", CreatedAt: base},
	}
	employees := []*model.Employee{
		{ID: primitive.NewObjectID(), FullName: "陳大文", CreatedAt: base.Add(time.Hour)},
	}

	feed := MergeFeed(evaluations, employees)
	if len(feed) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(feed))
	}

	// 時間新到舊
	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Errorf("feed not sorted desc at index %d: %v after %v", i, feed[i].Timestamp, feed[i-1].Timestamp)
		}
	}

	if feed[0].Type != core.ActivityEvaluationCreated {
		t.Errorf("newest entry type = %s, want %s", feed[0].Type, core.ActivityEvaluationCreated)
	}
	if feed[1].Type != core.ActivityEmployeeAdded {
		t.Errorf("middle entry type = %s, want %s", feed[1].Type, core.ActivityEmployeeAdded)
	}
	if feed[2].Type != core.ActivityEvaluationCreated {
		t.Errorf("oldest entry type = %s, want %s", feed[2].Type, core.ActivityEvaluationCreated)
	}
}

// 單一來源缺席時（例如該來源讀取失敗被略過），合成結果只含另一來源
func TestMergeFeedSingleSource(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	employees := []*model.Employee{
		{ID: primitive.NewObjectID(), FullName: "陳大文", CreatedAt: base.Add(time.Hour)},
		{ID: primitive.NewObjectID(), FullName: "林小芳", CreatedAt: base},
	}

	feed := MergeFeed(nil, employees)
	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	for i, entry := range feed {
		if entry.Type != core.ActivityEmployeeAdded {
			t.Errorf("entry %d type = %s, want %s", i, entry.Type, core.ActivityEmployeeAdded)
		}
	}
	if feed[0].Timestamp.Before(feed[1].Timestamp) {
		t.Error("feed not sorted desc")
	}
}

func TestMergeFeedEmpty(t *testing.T) {
	feed := MergeFeed(nil, nil)
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d entries", len(feed))
	}
}
