package services

import (
	"context"
	"strings"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
)

// CategoryAll matches every location type.
const CategoryAll = "all"

type LocationService struct {
	LocationRepo *repositories.LocationRepository
}

func (s *LocationService) GetLocations(ctx context.Context, search, category string) ([]models.Location, error) {
	locations, err := s.LocationRepo.GetAllLocations(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLocations(locations, search, category), nil
}

func (s *LocationService) GetLocationByID(ctx context.Context, id int) (models.Location, error) {
	return s.LocationRepo.GetLocationByID(ctx, id)
}

// NormalizeCategory lowercases a category label and strips spaces, so that
// "Historical Fort", "historicalFort" and "historicalfort" compare equal.
func NormalizeCategory(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "")
}

// FilterLocations returns the subset of locations whose name contains
// search case-insensitively and whose normalized type equals the
// normalized category ("all" or empty keeps every type). The input slice
// is never mutated and relative order is preserved; applying the same
// filter twice yields the same result.
func FilterLocations(locations []models.Location, search, category string) []models.Location {
	needle := strings.ToLower(search)
	wantType := NormalizeCategory(category)

	filtered := make([]models.Location, 0, len(locations))
	for _, l := range locations {
		if needle != "" && !strings.Contains(strings.ToLower(l.Name), needle) {
			continue
		}
		if wantType != "" && wantType != CategoryAll && NormalizeCategory(l.Type) != wantType {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}
