package service

import (
	"testing"
	"time"

	"simpleeval/internal/core"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from core.ScheduleStatus
		to   core.ScheduleStatus
		want bool
	}{
		{"draft to active", core.ScheduleStatusDraft, core.ScheduleStatusActive, true},
		{"draft to canceled", core.ScheduleStatusDraft, core.ScheduleStatusCanceled, true},
		{"draft to completed", core.ScheduleStatusDraft, core.ScheduleStatusCompleted, false},
		{"active to completed", core.ScheduleStatusActive, core.ScheduleStatusCompleted, true},
		{"active to canceled", core.ScheduleStatusActive, core.ScheduleStatusCanceled, true},
		{"active to draft", core.ScheduleStatusActive, core.ScheduleStatusDraft, false},
		{"completed is terminal", core.ScheduleStatusCompleted, core.ScheduleStatusActive, false},
		{"completed to canceled", core.ScheduleStatusCompleted, core.ScheduleStatusCanceled, false},
		{"canceled is terminal", core.ScheduleStatusCanceled, core.ScheduleStatusDraft, false},
		{"canceled to active", core.ScheduleStatusCanceled, core.ScheduleStatusActive, false},
		{"same status is not a transition", core.ScheduleStatusActive, core.ScheduleStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidScheduleWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"future window", now.AddDate(0, 0, 1), now.AddDate(0, 0, 30), true},
		{"started already but not ended", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), true},
		{"end before start", now.AddDate(0, 0, 10), now.AddDate(0, 0, 5), false},
		{"end equals start", now.AddDate(0, 0, 3), now.AddDate(0, 0, 3), false},
		{"window entirely in the past", now.AddDate(0, 0, -10), now.AddDate(0, 0, -1), false},
		{"end equals now", now.AddDate(0, 0, -1), now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidScheduleWindow(tt.start, tt.end, now); got != tt.want {
				t.Errorf("ValidScheduleWindow(%v, %v, now) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
