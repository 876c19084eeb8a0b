package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shinaBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.Account) (models.Account, error) {
	query := `INSERT INTO users (name, phone, email, password, role, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	res, err := r.DB.ExecContext(ctx, query, user.Name, user.Phone, user.Email, user.Password, user.Role)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return models.Account{}, models.ErrDuplicatePhone
		}
		return models.Account{}, err
	}
	id, _ := res.LastInsertId()
	user.ID = int(id)
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.Account, error) {
	var user models.Account
	query := `SELECT id, name, phone, email, role, created_at, updated_at FROM users WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, models.ErrUserNotFound
	}
	return user, err
}

// GetUserByPhone returns the account with its password hash for credential
// checks.
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.Account, error) {
	var user models.Account
	query := `SELECT id, name, phone, email, password, role, created_at, updated_at FROM users WHERE phone = ?`
	err := r.DB.QueryRowContext(ctx, query, phone).Scan(
		&user.ID, &user.Name, &user.Phone, &user.Email, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.Account) error {
	query := `UPDATE users SET name = ?, email = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, user.Name, user.Email, user.ID)
	return err
}

func (r *UserRepository) SaveSession(ctx context.Context, session models.Session) error {
	query := `INSERT INTO sessions (user_id, role, refresh_token, expires_at)
	          VALUES (?, ?, ?, ?)
	          ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	return session, err
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
