package dto

import "time"

// 更新組織
type UpdateOrganizationDto struct {
	Name  *string `json:"name,omitempty"`
	Seats *int    `json:"seats,omitempty" binding:"omitempty,min=1"`
}

type OrganizationResponseDto struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"ownerId"`
	TrialEndsAt time.Time `json:"trialEndsAt"`
	IsActive    bool      `json:"isActive"`
	Seats       int       `json:"seats"`
	UsedSeats   int       `json:"usedSeats"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
