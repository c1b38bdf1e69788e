package dto

import (
	"time"

	"simpleeval/internal/core"
)

type ActivityResponseDto struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId,omitempty"`
	UserName    string            `json:"userName,omitempty"`
	Type        core.ActivityType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        string            `json:"link,omitempty"`
	EntityID    string            `json:"entityId,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// 活動牆回應；source 標示資料來自 activities 或 fallback 合成
type ActivityFeedResponseDto struct {
	Source     string                `json:"source"`
	Activities []ActivityResponseDto `json:"activities"`
}
