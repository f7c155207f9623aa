package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type RestaurantService struct {
	RestaurantRepo *repositories.RestaurantRepository
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	return s.RestaurantRepo.CreateRestaurant(ctx, r)
}

func (s *RestaurantService) GetRestaurantsByType(ctx context.Context, restaurantType string) ([]models.Restaurant, error) {
	return s.RestaurantRepo.GetRestaurantsByType(ctx, restaurantType)
}
