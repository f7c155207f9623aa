package repositories

import (
	"context"
	"database/sql"
	"time"

	"traveleon/internal/models"
)

type AccommodationRepository struct {
	DB *sql.DB
}

func (r *AccommodationRepository) CreateAccommodation(ctx context.Context, a models.Accommodation) (models.Accommodation, error) {
	images, err := encodeImages(a.Images)
	if err != nil {
		return models.Accommodation{}, err
	}

	query := `
		INSERT INTO accommodations (name, accommodation_type, location, contact_no, price, images, seller_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	a.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		a.Name, a.AccommodationType, a.Location, a.ContactNo, a.Price, images, a.SellerID, a.CreatedAt,
	)
	if err != nil {
		return models.Accommodation{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Accommodation{}, err
	}
	a.ID = int(id)
	return a, nil
}

// GetAccommodationsByType returns every accommodation when accommodationType
// is empty, otherwise only exact matches.
func (r *AccommodationRepository) GetAccommodationsByType(ctx context.Context, accommodationType string) ([]models.Accommodation, error) {
	query := `
		SELECT id, name, accommodation_type, location, contact_no, price, images, seller_id, created_at
		FROM accommodations
	`
	var args []interface{}
	if accommodationType != "" {
		query += ` WHERE accommodation_type = ?`
		args = append(args, accommodationType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Accommodation
	for rows.Next() {
		var a models.Accommodation
		var imagesJSON []byte
		if err := rows.Scan(
			&a.ID, &a.Name, &a.AccommodationType, &a.Location, &a.ContactNo, &a.Price,
			&imagesJSON, &a.SellerID, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if a.Images, err = decodeImages(imagesJSON); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
