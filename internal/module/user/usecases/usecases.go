package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel-service/config"
	"travel-service/internal/module/user/models/entity"
	"travel-service/internal/module/user/models/request"
	"travel-service/internal/module/user/models/response"
	"travel-service/internal/module/user/repositories"
	"travel-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/crypto/bcrypt"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
	cfg  *config.JWTConfig
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.Profile, error)
	Login(ctx context.Context, payload *request.Login) (response.Auth, error)
	Profile(ctx context.Context, userID string) (response.Profile, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, cfg *config.JWTConfig) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
		cfg:  cfg,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.Profile, error) {
	// email uniqueness is also enforced by the db, this gives a friendlier error
	if _, err := u.repo.FindUserByEmail(ctx, payload.Email); err == nil {
		return response.Profile{}, errors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error hash password: %v", err))
		return response.Profile{}, errors.InternalServerError("error hash password")
	}

	role := payload.Role
	if role == "" {
		role = entity.RoleGuest
	}

	user := entity.User{
		ID:           uuid.New(),
		FullName:     payload.FullName,
		Email:        payload.Email,
		Phone:        sql.NullString{String: payload.Phone, Valid: payload.Phone != ""},
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.repo.InsertUser(ctx, user); err != nil {
		return response.Profile{}, err
	}

	return profileResponse(user), nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Auth, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return response.Auth{}, errors.UnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return response.Auth{}, errors.UnauthorizedError("invalid email or password")
	}

	expiresIn := time.Duration(u.cfg.ExpireMin) * time.Minute
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"name":  user.FullName,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.cfg.Secret))
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error sign token: %v", err))
		return response.Auth{}, errors.InternalServerError("error sign token")
	}

	return response.Auth{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn.Seconds()),
	}, nil
}

func (u *usecase) Profile(ctx context.Context, userID string) (response.Profile, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}
	return profileResponse(user), nil
}

func profileResponse(user entity.User) response.Profile {
	return response.Profile{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone.String,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
