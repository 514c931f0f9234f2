package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
)

// LocalUser clave de c.Locals con el *entity.User autenticado.
const LocalUser = "user"

var (
	errAuthRequired     = domain.NewError(domain.ErrUnauthorized, "Authentication required")
	errInvalidToken     = domain.NewError(domain.ErrUnauthorized, "Invalid token")
	errTokenExpired     = domain.NewError(domain.ErrUnauthorized, "Token expired")
	errTokenUserMissing = domain.NewError(domain.ErrUnauthorized, "User not found")
	errInsufficientRole = domain.NewError(domain.ErrForbidden, "Insufficient permissions")
)

// UserLoader carga la fila vigente del usuario del token.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}

// Authenticate valida el Bearer Token y recarga el usuario; el rol y el estado
// se toman de la base, no de los claims.
func Authenticate(tokens *jwt.Manager, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearer(c)
		if err != nil {
			return err
		}
		user, err := loadUser(c, tokens, users, raw)
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// OptionalAuth adjunta el usuario si el token es válido; nunca rechaza la petición.
func OptionalAuth(tokens *jwt.Manager, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearer(c)
		if err != nil {
			return c.Next()
		}
		if user, err := loadUser(c, tokens, users, raw); err == nil {
			c.Locals(LocalUser, user)
		}
		return c.Next()
	}
}

// RequireRole deja pasar sólo a usuarios autenticados con alguno de los roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return errAuthRequired
		}
		if !user.HasRole(roles...) {
			return errInsufficientRole.WithDetail("Required role: " + strings.Join(roles, " or "))
		}
		return c.Next()
	}
}

func bearer(c *fiber.Ctx) (string, error) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errAuthRequired
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", errAuthRequired
	}
	return raw, nil
}

func loadUser(c *fiber.Ctx, tokens *jwt.Manager, users UserLoader, raw string) (*entity.User, error) {
	claims, err := tokens.ParseAccess(raw)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, errTokenExpired
		}
		return nil, errInvalidToken
	}
	user, err := users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errTokenUserMissing
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	return user, nil
}

// CurrentUser devuelve el usuario autenticado o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.Role
	}
	return ""
}

func actor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Role: GetRole(c)}
}
