package middleware

import (
	"fmt"
	"strings"

	"travel-service/config"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log *otelzap.Logger
	Cfg *config.JWTConfig
}

// ValidateToken authenticates the bearer token and stores the caller's
// identity in the request locals for ownership checks downstream.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	tokenString := strings.TrimPrefix(auth, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.Cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	userID, _ := claims["sub"].(string)
	emailUser, _ := claims["email"].(string)
	userRole, _ := claims["role"].(string)
	fullName, _ := claims["name"].(string)
	if userID == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token: missing subject")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", userID)
	ctx.Locals("email_user", emailUser)
	ctx.Locals("user_role", userRole)
	ctx.Locals("full_name", fullName)

	return ctx.Next()
}

// RequireRole gates an endpoint to the given roles. Admins always pass.
func (m *Middleware) RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("user_role").(string)
		if role == "admin" {
			return ctx.Next()
		}
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}

		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate role: %s not allowed", role))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("you don't have permission to access this resource"))
	}
}
