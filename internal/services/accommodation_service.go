package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type AccommodationService struct {
	AccommodationRepo *repositories.AccommodationRepository
}

func (s *AccommodationService) CreateAccommodation(ctx context.Context, a models.Accommodation) (models.Accommodation, error) {
	return s.AccommodationRepo.CreateAccommodation(ctx, a)
}

func (s *AccommodationService) GetAccommodationsByType(ctx context.Context, accommodationType string) ([]models.Accommodation, error) {
	return s.AccommodationRepo.GetAccommodationsByType(ctx, accommodationType)
}
