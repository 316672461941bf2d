package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrcore/hr-management/internal"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetPasswordForEmail(ctx context.Context, email string) (string, int64, error) {
	var passwordHash string
	var userID int64
	query := `SELECT id, password_hash FROM users WHERE email = ?`

	row := r.db.WithContext(ctx).Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, fmt.Errorf("user not found")
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

func (r *AuthRepository) GetUserWithScopes(ctx context.Context, userID int64) (*internal.AuthUser, error) {
	var user internal.AuthUser

	query := `SELECT id, email FROM users WHERE id = ?`
	row := r.db.WithContext(ctx).Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	scopeQuery := `SELECT s.name
	              FROM scopes s
	              JOIN user_scopes us ON s.id = us.scope_id
	              WHERE us.user_id = ?`

	rows, err := r.db.WithContext(ctx).Raw(scopeQuery, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		scopes = append(scopes, name)
	}

	user.Scopes = scopes
	return &user, nil
}
