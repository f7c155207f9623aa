package repositories

import (
	"context"
	"database/sql"

	"traveleon/internal/models"
)

type EmergencyRepository struct {
	DB *sql.DB
}

func (r *EmergencyRepository) CreateEmergencyService(ctx context.Context, e models.EmergencyService) (models.EmergencyService, error) {
	query := `
		INSERT INTO emergency_services (service_type, location, contact_number, service_hours)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, e.ServiceType, e.Location, e.ContactNumber, e.ServiceHours)
	if err != nil {
		return models.EmergencyService{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.EmergencyService{}, err
	}
	e.ID = int(id)
	return e, nil
}

func (r *EmergencyRepository) GetEmergencyServicesByType(ctx context.Context, serviceType string) ([]models.EmergencyService, error) {
	query := `
		SELECT id, service_type, location, contact_number, service_hours
		FROM emergency_services
	`
	var args []interface{}
	if serviceType != "" {
		query += ` WHERE service_type = ?`
		args = append(args, serviceType)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.EmergencyService
	for rows.Next() {
		var e models.EmergencyService
		if err := rows.Scan(&e.ID, &e.ServiceType, &e.Location, &e.ContactNumber, &e.ServiceHours); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
