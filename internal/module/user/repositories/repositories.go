package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	InsertUser(ctx context.Context, user entity.User) error
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindUserByID(ctx context.Context, userID string) (entity.User, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertUser implements Repositories.
func (r *repositories) InsertUser(ctx context.Context, user entity.User) error {
	query := `
		INSERT INTO users (id, full_name, email, phone, password_hash, role, created_at)
		VALUES (:id, :full_name, :email, :phone, :password_hash, :role, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert user: %v", err))
		return errors.InternalServerError("error insert user")
	}
	return nil
}

// FindUserByEmail implements Repositories.
func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	query := `SELECT * FROM users WHERE email = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find user by email: %v", err))
		return entity.User{}, errors.InternalServerError("error find user by email")
	}
	return user, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, userID string) (entity.User, error) {
	query := `SELECT * FROM users WHERE id = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find user by id: %v", err))
		return entity.User{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}
