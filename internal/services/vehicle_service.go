package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type VehicleService struct {
	VehicleRepo *repositories.VehicleRepository
}

func (s *VehicleService) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	return s.VehicleRepo.CreateVehicle(ctx, v)
}

func (s *VehicleService) GetVehiclesByType(ctx context.Context, vehicleType string) ([]models.Vehicle, error) {
	return s.VehicleRepo.GetVehiclesByType(ctx, vehicleType)
}
