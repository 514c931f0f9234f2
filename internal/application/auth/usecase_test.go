package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pankaj-shinde04/store-rating/internal/application/auth"
	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository/mocks"
	"github.com/pankaj-shinde04/store-rating/pkg/jwt"
)

func newManager() *jwt.Manager {
	return jwt.NewManager(
		jwt.Options{Secret: "access-secret", Issuer: "test", Audience: "users", TTL: time.Minute},
		jwt.Options{Secret: "refresh-secret", Issuer: "test", Audience: "users", TTL: time.Hour},
	)
}

func newUseCase(repo *mocks.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, newManager(), bcrypt.MinCost)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestRegister_HashesPasswordAndIssuesTokens(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := newUseCase(repo)

	repo.On("EmailTaken", mock.Anything, "ana@example.com", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash != "secret123" &&
			auth.CheckPassword(u.PasswordHash, "secret123") &&
			!auth.CheckPassword(u.PasswordHash, "secret124") &&
			u.Role == entity.RoleNormalUser && u.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 7
	}).Return(nil)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana Lopez", Email: "Ana@Example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)

	claims, err := newManager().ParseAccess(out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := newUseCase(repo)
	repo.On("EmailTaken", mock.Anything, "ana@example.com", int64(0)).Return(true, nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_AdminRefused(t *testing.T) {
	uc := newUseCase(new(mocks.UserRepository))

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Eve", Email: "eve@example.com", Password: "secret123", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin(t *testing.T) {
	active := &entity.User{ID: 1, Email: "admin@x.com", Role: entity.RoleAdmin, IsActive: true, PasswordHash: hashed(t, "right-pass")}

	tests := []struct {
		name    string
		user    *entity.User
		in      dto.LoginRequest
		wantErr *domain.Error
	}{
		{"ok", active, dto.LoginRequest{Email: "admin@x.com", Password: "right-pass"}, nil},
		{"ok con rol", active, dto.LoginRequest{Email: "admin@x.com", Password: "right-pass", Role: "admin"}, nil},
		{"password incorrecto", active, dto.LoginRequest{Email: "admin@x.com", Password: "wrong", Role: "admin"}, domain.ErrInvalidCredentials},
		{"email desconocido", nil, dto.LoginRequest{Email: "admin@x.com", Password: "right-pass"}, domain.ErrInvalidCredentials},
		{"cuenta inactiva", &entity.User{ID: 2, Role: entity.RoleNormalUser, PasswordHash: active.PasswordHash}, dto.LoginRequest{Email: "admin@x.com", Password: "right-pass"}, domain.ErrAccountDeactivated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.UserRepository)
			repo.On("GetByEmail", mock.Anything, "admin@x.com").Return(tt.user, nil)

			out, err := newUseCase(repo).Login(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, out.AccessToken)
			assert.Equal(t, "admin@x.com", out.User.Email)
		})
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@x.com").Return(&entity.User{
		ID: 3, Role: entity.RoleNormalUser, IsActive: true, PasswordHash: hashed(t, "pass123"),
	}, nil)

	_, err := newUseCase(repo).Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "pass123", Role: "admin"})

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Role mismatch", de.Msg)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh(t *testing.T) {
	m := newManager()
	pair, err := m.GeneratePair(jwt.Identity{ID: 9, Email: "u@x.com", Role: entity.RoleNormalUser})
	require.NoError(t, err)

	t.Run("vacío", func(t *testing.T) {
		_, err := newUseCase(new(mocks.UserRepository)).Refresh(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("access token no sirve como refresh", func(t *testing.T) {
		_, err := newUseCase(new(mocks.UserRepository)).Refresh(context.Background(), pair.AccessToken)
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "Invalid refresh token", de.Msg)
	})

	t.Run("usuario inactivo", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.User{ID: 9}, nil)
		_, err := newUseCase(repo).Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, domain.ErrAccountDeactivated)
	})

	t.Run("ok", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(9)).Return(&entity.User{ID: 9, IsActive: true, Role: entity.RoleNormalUser}, nil)
		out, err := newUseCase(repo).Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, out.Tokens.AccessToken)
	})
}

func TestChangePassword(t *testing.T) {
	user := &entity.User{ID: 4, IsActive: true, PasswordHash: hashed(t, "old-pass")}

	t.Run("actual incorrecta", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(4)).Return(user, nil)
		err := newUseCase(repo).ChangePassword(context.Background(), 4, dto.ChangePasswordRequest{
			CurrentPassword: "nope", NewPassword: "new-pass", ConfirmPassword: "new-pass",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ok", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("GetByID", mock.Anything, int64(4)).Return(user, nil)
		repo.On("UpdatePassword", mock.Anything, int64(4), mock.MatchedBy(func(h string) bool {
			return auth.CheckPassword(h, "new-pass")
		})).Return(nil)
		err := newUseCase(repo).ChangePassword(context.Background(), 4, dto.ChangePasswordRequest{
			CurrentPassword: "old-pass", NewPassword: "new-pass", ConfirmPassword: "new-pass",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUpdateProfile_EmailOwnedByOther(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&entity.User{ID: 5, IsActive: true}, nil)
	repo.On("EmailTaken", mock.Anything, "taken@x.com", int64(5)).Return(true, nil)

	_, err := newUseCase(repo).UpdateProfile(context.Background(), 5, dto.UpdateProfileRequest{Name: "Bob", Email: "taken@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestEnsureAdmin(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("GetByEmail", mock.Anything, "admin@x.com").Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleAdmin && auth.CheckPassword(u.PasswordHash, "Admin@123456")
	})).Return(nil).Once()

	created, err := newUseCase(repo).EnsureAdmin(context.Background(), auth.AdminSeed{Email: "admin@x.com", Password: "Admin@123456", Name: "System Administrator"})
	require.NoError(t, err)
	assert.True(t, created)

	repo.On("GetByEmail", mock.Anything, "admin@x.com").Return(&entity.User{ID: 1}, nil).Once()
	created, err = newUseCase(repo).EnsureAdmin(context.Background(), auth.AdminSeed{Email: "admin@x.com", Password: "x", Name: "x"})
	require.NoError(t, err)
	assert.False(t, created)
}
