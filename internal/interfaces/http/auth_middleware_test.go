package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	apphttp "github.com/pankaj-shinde04/store-rating/internal/interfaces/http"
	pkgjwt "github.com/pankaj-shinde04/store-rating/pkg/jwt"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	accessOpts = pkgjwt.Options{
		Secret: "test-access-secret", Issuer: "store-rating-test", Audience: "store-rating-users", TTL: time.Hour,
	}
	refreshOpts = pkgjwt.Options{
		Secret: "test-refresh-secret", Issuer: "store-rating-test", Audience: "store-rating-users", TTL: 24 * time.Hour,
	}
	testTokens = pkgjwt.NewManager(accessOpts, refreshOpts)
)

// userTable UserLoader en memoria.
type userTable map[int64]*entity.User

func (t userTable) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return t[id], nil
}

func testUsers() userTable {
	return userTable{
		1: {ID: 1, Name: "Admin", Email: "admin@x.com", Role: entity.RoleAdmin, IsActive: true},
		2: {ID: 2, Name: "Owner", Email: "owner@x.com", Role: entity.RoleStoreOwner, IsActive: true},
		3: {ID: 3, Name: "Normal", Email: "user@x.com", Role: entity.RoleNormalUser, IsActive: true},
		4: {ID: 4, Name: "Gone", Email: "gone@x.com", Role: entity.RoleNormalUser, IsActive: false},
	}
}

// buildTestApp aplicación mínima con Authenticate + RequireRole y el ErrorHandler real.
func buildTestApp(users apphttp.UserLoader, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Get("/protected",
		apphttp.Authenticate(testTokens, users),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c), "id": apphttp.GetUserID(c)})
		},
	)
	app.Get("/optional", apphttp.OptionalAuth(testTokens, users), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": apphttp.GetUserID(c)})
	})
	return app
}

func bearerFor(t *testing.T, opts pkgjwt.Options, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(opts, pkgjwt.Identity{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name})
	require.NoError(t, err)
	return "Bearer " + tok
}

func get(t *testing.T, app *fiber.App, path, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_Rejections(t *testing.T) {
	users := testUsers()
	app := buildTestApp(users, entity.RoleNormalUser, entity.RoleStoreOwner, entity.RoleAdmin)

	expired := accessOpts
	expired.TTL = -time.Minute
	wrongSecret := accessOpts
	wrongSecret.Secret = "otro"

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"sin header", "", "Authentication required"},
		{"esquema distinto", "Basic abc", "Authentication required"},
		{"bearer vacío", "Bearer   ", "Authentication required"},
		{"token basura", "Bearer abc.def.ghi", "Invalid token"},
		{"firma incorrecta", bearerFor(t, wrongSecret, users[3]), "Invalid token"},
		{"refresh como access", bearerFor(t, refreshOpts, users[3]), "Invalid token"},
		{"expirado", bearerFor(t, expired, users[3]), "Token expired"},
		{"usuario inexistente", bearerFor(t, accessOpts, &entity.User{ID: 99, Role: entity.RoleAdmin}), "User not found"},
		{"cuenta desactivada", bearerFor(t, accessOpts, users[4]), "Account is deactivated"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := get(t, app, "/protected", tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.want, body["error"])
		})
	}
}

// El rol se toma de la fila persistida, no del claim del token.
func TestAuthenticate_RoleFromDatabase(t *testing.T) {
	users := testUsers()
	app := buildTestApp(users, entity.RoleAdmin)

	forged := &entity.User{ID: 3, Email: "user@x.com", Role: entity.RoleAdmin}
	status, body := get(t, app, "/protected", bearerFor(t, accessOpts, forged))

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole(t *testing.T) {
	users := testUsers()

	t.Run("rol permitido", func(t *testing.T) {
		app := buildTestApp(users, entity.RoleAdmin)
		status, body := get(t, app, "/protected", bearerFor(t, accessOpts, users[1]))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, entity.RoleAdmin, body["role"])
		assert.EqualValues(t, 1, body["id"])
	})

	t.Run("uno de varios roles", func(t *testing.T) {
		app := buildTestApp(users, entity.RoleStoreOwner, entity.RoleAdmin)
		status, _ := get(t, app, "/protected", bearerFor(t, accessOpts, users[2]))
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("rol distinto", func(t *testing.T) {
		app := buildTestApp(users, entity.RoleStoreOwner)
		status, body := get(t, app, "/protected", bearerFor(t, accessOpts, users[3]))
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Insufficient permissions", body["error"])
		assert.Equal(t, "Required role: store_owner", body["message"])
	})

	t.Run("sin autenticar", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
		app.Get("/only-role", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(200) })
		status, body := get(t, app, "/only-role", "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Authentication required", body["error"])
	})
}

func TestOptionalAuth(t *testing.T) {
	users := testUsers()
	app := buildTestApp(users)

	_, body := get(t, app, "/optional", "")
	assert.EqualValues(t, 0, body["id"])

	_, body = get(t, app, "/optional", "Bearer basura")
	assert.EqualValues(t, 0, body["id"])

	_, body = get(t, app, "/optional", bearerFor(t, accessOpts, users[2]))
	assert.EqualValues(t, 2, body["id"])
}
