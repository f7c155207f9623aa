package repositories

import (
	"context"
	"database/sql"

	"traveleon/internal/models"
)

type LocationRepository struct {
	DB *sql.DB
}

// GetAllLocations is a one-shot fetch; refinement by search string and
// category happens in the service layer over the returned slice.
func (r *LocationRepository) GetAllLocations(ctx context.Context) ([]models.Location, error) {
	query := `
		SELECT id, name, type, image, description, latitude, longitude
		FROM locations
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Type, &l.Image, &l.Description, &l.Latitude, &l.Longitude,
		); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) GetLocationByID(ctx context.Context, id int) (models.Location, error) {
	var l models.Location
	query := `
		SELECT id, name, type, image, description, latitude, longitude
		FROM locations
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Type, &l.Image, &l.Description, &l.Latitude, &l.Longitude,
	)
	if err == sql.ErrNoRows {
		return models.Location{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Location{}, err
	}
	return l, nil
}
