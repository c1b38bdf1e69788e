package service

import (
	"context"
	"errors"

	"simpleeval/internal/database/mongodb/model"
	"simpleeval/internal/database/mongodb/repository"
	"simpleeval/internal/dto"
	cErr "simpleeval/internal/pkg/error"
	"simpleeval/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationService struct {
	trace   *telemetry.Trace
	orgRepo *repository.OrganizationRepository
}

func NewOrganizationService(trace *telemetry.Trace, orgRepo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{trace: trace, orgRepo: orgRepo}
}

// 查詢自身組織
func (s *OrganizationService) GetOrganization(ctx context.Context, orgID primitive.ObjectID) (*dto.OrganizationResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	organization, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("organization not found")
		}
		return nil, cErr.DatabaseError("database GetOrganization error")
	}
	return modelToOrganizationResponseDto(organization), nil
}

// 更新組織（名稱、席次）
func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID primitive.ObjectID, in *dto.UpdateOrganizationDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Seats != nil {
		update["seats"] = *in.Seats
	}
	if len(update) == 0 {
		return nil
	}

	matchedCount, err := s.orgRepo.UpdateByID(ctx, orgID, bson.M{"$set": update})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("organization not found")
		}
		return cErr.DatabaseError("database UpdateOrganization error")
	}
	if matchedCount == 0 {
		return cErr.NotFound("organization not found")
	}
	return nil
}

func modelToOrganizationResponseDto(m *model.Organization) *dto.OrganizationResponseDto {
	return &dto.OrganizationResponseDto{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		OwnerID:     m.OwnerID.Hex(),
		TrialEndsAt: m.TrialEndsAt,
		IsActive:    m.IsActive,
		Seats:       m.Seats,
		UsedSeats:   m.UsedSeats,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
