package repositories

import (
	"context"
	"database/sql"
	"time"

	"traveleon/internal/models"
)

type RestaurantRepository struct {
	DB *sql.DB
}

func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, rest models.Restaurant) (models.Restaurant, error) {
	images, err := encodeImages(rest.Images)
	if err != nil {
		return models.Restaurant{}, err
	}

	query := `
		INSERT INTO restaurants (name, restaurant_type, location, contact_no, price_range, images, seller_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	rest.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		rest.Name, rest.RestaurantType, rest.Location, rest.ContactNo, rest.PriceRange, images, rest.SellerID, rest.CreatedAt,
	)
	if err != nil {
		return models.Restaurant{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Restaurant{}, err
	}
	rest.ID = int(id)
	return rest, nil
}

func (r *RestaurantRepository) GetRestaurantsByType(ctx context.Context, restaurantType string) ([]models.Restaurant, error) {
	query := `
		SELECT id, name, restaurant_type, location, contact_no, price_range, images, seller_id, created_at
		FROM restaurants
	`
	var args []interface{}
	if restaurantType != "" {
		query += ` WHERE restaurant_type = ?`
		args = append(args, restaurantType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Restaurant
	for rows.Next() {
		var rest models.Restaurant
		var imagesJSON []byte
		if err := rows.Scan(
			&rest.ID, &rest.Name, &rest.RestaurantType, &rest.Location, &rest.ContactNo, &rest.PriceRange,
			&imagesJSON, &rest.SellerID, &rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		if rest.Images, err = decodeImages(imagesJSON); err != nil {
			return nil, err
		}
		items = append(items, rest)
	}
	return items, rows.Err()
}
