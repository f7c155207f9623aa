package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type TourGuideService struct {
	TourGuideRepo *repositories.TourGuideRepository
}

func (s *TourGuideService) CreateTourGuide(ctx context.Context, g models.TourGuide) (models.TourGuide, error) {
	return s.TourGuideRepo.CreateTourGuide(ctx, g)
}

func (s *TourGuideService) GetTourGuidesByType(ctx context.Context, guideType string) ([]models.TourGuide, error) {
	return s.TourGuideRepo.GetTourGuidesByType(ctx, guideType)
}
