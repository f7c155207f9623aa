package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type EmergencyServiceService struct {
	EmergencyRepo *repositories.EmergencyRepository
}

func (s *EmergencyServiceService) CreateEmergencyService(ctx context.Context, e models.EmergencyService) (models.EmergencyService, error) {
	return s.EmergencyRepo.CreateEmergencyService(ctx, e)
}

func (s *EmergencyServiceService) GetEmergencyServicesByType(ctx context.Context, serviceType string) ([]models.EmergencyService, error) {
	return s.EmergencyRepo.GetEmergencyServicesByType(ctx, serviceType)
}
