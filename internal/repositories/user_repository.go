package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"traveleon/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (name, email, passport_number, password, avatar, role, disabled, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	user.UpdatedAt = &user.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.PassportNumber, user.Password, user.Avatar, user.Role,
		user.Disabled, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, name, email, passport_number, password, avatar, role, disabled, created_at, updated_at
        FROM users
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PassportNumber, &user.Password,
		&user.Avatar, &user.Role, &user.Disabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail returns a zero User when no row matches; sign-up uses
// that to detect free emails.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, name, email, passport_number, password, avatar, role, disabled, created_at, updated_at
        FROM users
        WHERE email = ?
    `
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PassportNumber, &user.Password,
		&user.Avatar, &user.Role, &user.Disabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        UPDATE users
        SET name = ?, passport_number = ?, avatar = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	user.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.PassportNumber, user.Avatar, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return models.User{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}

	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	query := `UPDATE users SET avatar = ?, updated_at = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, avatarURL, time.Now(), userID)
	return err
}

func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
		UPDATE users
		SET refresh_token = ?, expires_at = ?
		WHERE id = ?
	`

	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT id, role, refresh_token, expires_at
		FROM users
		WHERE refresh_token = ?
	`

	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (r *UserRepository) UserLogOut(ctx context.Context, userID int) error {
	query := `UPDATE users SET refresh_token = '' WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

// Push token registry, one device token per user.

func (r *UserRepository) SetDeviceToken(ctx context.Context, userID int, token string) error {
	query := `
		INSERT INTO device_tokens (user_id, token)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE token = VALUES(token)
	`
	_, err := r.DB.ExecContext(ctx, query, userID, token)
	return err
}

func (r *UserRepository) GetDeviceToken(ctx context.Context, userID int) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, `SELECT token FROM device_tokens WHERE user_id = ?`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
