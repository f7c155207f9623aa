package repositories

import (
	"context"
	"database/sql"
	"time"

	"traveleon/internal/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	images, err := encodeImages(v.Images)
	if err != nil {
		return models.Vehicle{}, err
	}

	query := `
		INSERT INTO vehicle_rentals (name, vehicle_type, location, contact_no, price, images, seller_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	v.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		v.Name, v.VehicleType, v.Location, v.ContactNo, v.Price, images, v.SellerID, v.CreatedAt,
	)
	if err != nil {
		return models.Vehicle{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Vehicle{}, err
	}
	v.ID = int(id)
	return v, nil
}

func (r *VehicleRepository) GetVehiclesByType(ctx context.Context, vehicleType string) ([]models.Vehicle, error) {
	query := `
		SELECT id, name, vehicle_type, location, contact_no, price, images, seller_id, created_at
		FROM vehicle_rentals
	`
	var args []interface{}
	if vehicleType != "" {
		query += ` WHERE vehicle_type = ?`
		args = append(args, vehicleType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		var imagesJSON []byte
		if err := rows.Scan(
			&v.ID, &v.Name, &v.VehicleType, &v.Location, &v.ContactNo, &v.Price,
			&imagesJSON, &v.SellerID, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		if v.Images, err = decodeImages(imagesJSON); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
