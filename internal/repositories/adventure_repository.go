package repositories

import (
	"context"
	"database/sql"
	"time"

	"traveleon/internal/models"
)

type AdventureRepository struct {
	DB *sql.DB
}

func (r *AdventureRepository) CreateAdventure(ctx context.Context, a models.Adventure) (models.Adventure, error) {
	images, err := encodeImages(a.Images)
	if err != nil {
		return models.Adventure{}, err
	}

	query := `
		INSERT INTO adventures (name, adventure_type, location, contact_no, price_per_person, images, seller_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	a.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		a.Name, a.AdventureType, a.Location, a.ContactNo, a.PricePerPerson, images, a.SellerID, a.CreatedAt,
	)
	if err != nil {
		return models.Adventure{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Adventure{}, err
	}
	a.ID = int(id)
	return a, nil
}

func (r *AdventureRepository) GetAdventuresByType(ctx context.Context, adventureType string) ([]models.Adventure, error) {
	query := `
		SELECT id, name, adventure_type, location, contact_no, price_per_person, images, seller_id, created_at
		FROM adventures
	`
	var args []interface{}
	if adventureType != "" {
		query += ` WHERE adventure_type = ?`
		args = append(args, adventureType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Adventure
	for rows.Next() {
		var a models.Adventure
		var imagesJSON []byte
		if err := rows.Scan(
			&a.ID, &a.Name, &a.AdventureType, &a.Location, &a.ContactNo, &a.PricePerPerson,
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
