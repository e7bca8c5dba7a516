package service

import (
	"context"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type soilCheckService struct {
	soilRepo repository.SoilCheckRepository
}

func NewSoilCheckService(soilRepo repository.SoilCheckRepository) SoilCheckService {
	return &soilCheckService{soilRepo: soilRepo}
}

func (s *soilCheckService) Request(ctx context.Context, userID, farmLocation, cropType, notes string) (*domain.SoilCheck, error) {
	sc := &domain.SoilCheck{
		UserID:       userID,
		FarmLocation: farmLocation,
		CropType:     cropType,
		Notes:        notes,
		Status:       domain.SoilCheckStatusPending,
	}
	if err := s.soilRepo.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *soilCheckService) ListMine(ctx context.Context, userID string) ([]domain.SoilCheck, error) {
	return s.soilRepo.ListByUser(ctx, userID)
}
