package services

import (
	"context"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

type AdventureService struct {
	AdventureRepo *repositories.AdventureRepository
}

func (s *AdventureService) CreateAdventure(ctx context.Context, a models.Adventure) (models.Adventure, error) {
	return s.AdventureRepo.CreateAdventure(ctx, a)
}

func (s *AdventureService) GetAdventuresByType(ctx context.Context, adventureType string) ([]models.Adventure, error) {
	return s.AdventureRepo.GetAdventuresByType(ctx, adventureType)
}
