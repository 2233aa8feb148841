package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID      `db:"id"`
	FullName     string         `db:"full_name"`
	Email        string         `db:"email"`
	Phone        sql.NullString `db:"phone"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	CreatedAt    time.Time      `db:"created_at"`
}
