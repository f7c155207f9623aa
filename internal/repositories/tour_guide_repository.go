package repositories

import (
	"context"
	"database/sql"
	"time"

	"traveleon/internal/models"
)

type TourGuideRepository struct {
	DB *sql.DB
}

func (r *TourGuideRepository) CreateTourGuide(ctx context.Context, g models.TourGuide) (models.TourGuide, error) {
	images, err := encodeImages(g.Images)
	if err != nil {
		return models.TourGuide{}, err
	}

	query := `
		INSERT INTO tour_guides (name, guide_type, languages, price_per_day, contact_no, images, seller_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	g.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		g.Name, g.GuideType, g.Languages, g.PricePerDay, g.ContactNo, images, g.SellerID, g.CreatedAt,
	)
	if err != nil {
		return models.TourGuide{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.TourGuide{}, err
	}
	g.ID = int(id)
	return g, nil
}

func (r *TourGuideRepository) GetTourGuidesByType(ctx context.Context, guideType string) ([]models.TourGuide, error) {
	query := `
		SELECT id, name, guide_type, languages, price_per_day, contact_no, images, seller_id, created_at
		FROM tour_guides
	`
	var args []interface{}
	if guideType != "" {
		query += ` WHERE guide_type = ?`
		args = append(args, guideType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.TourGuide
	for rows.Next() {
		var g models.TourGuide
		var imagesJSON []byte
		if err := rows.Scan(
			&g.ID, &g.Name, &g.GuideType, &g.Languages, &g.PricePerDay, &g.ContactNo,
			&imagesJSON, &g.SellerID, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		if g.Images, err = decodeImages(imagesJSON); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}
