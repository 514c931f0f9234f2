package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired el token tiene firma válida pero está vencido.
	ErrExpired = errors.New("jwt: token expirado")
	// ErrInvalid firma, formato, issuer o audience incorrectos.
	ErrInvalid = errors.New("jwt: token inválido")
)

// Identity datos del usuario que viajan dentro del token.
type Identity struct {
	ID    int64
	Email string
	Role  string
	Name  string
}

// Claims incluye los claims estándar JWT más la identidad del usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

// Identity extrae la identidad de los claims.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Email: c.Email, Role: c.Role, Name: c.Name}
}

// Options parámetros de firma de un tipo de token.
type Options struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Generate genera un token HS256 firmado para la identidad indicada.
func Generate(opts Options, id Identity) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Subject:   strconv.FormatInt(id.ID, 10),
			Audience:  jwt.ClaimStrings{opts.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		},
		UserID: id.ID,
		Email:  id.Email,
		Role:   id.Role,
		Name:   id.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// Parse valida firma, vigencia, issuer y audience. Devuelve ErrExpired o ErrInvalid envolviendo la causa.
func Parse(opts Options, tokenString string) (*Claims, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(opts.Secret), nil
	},
		jwt.WithIssuer(opts.Issuer),
		jwt.WithAudience(opts.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalid
	}
	return claims, nil
}

// TokenPair par access/refresh entregado al cliente.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Manager firma y verifica ambos tipos de token con secretos separados.
type Manager struct {
	access  Options
	refresh Options
}

// NewManager construye el manager.
func NewManager(access, refresh Options) *Manager {
	return &Manager{access: access, refresh: refresh}
}

// GeneratePair emite un access token y un refresh token nuevos.
func (m *Manager) GeneratePair(id Identity) (TokenPair, error) {
	access, err := Generate(m.access, id)
	if err != nil {
		return TokenPair{}, fmt.Errorf("access token: %w", err)
	}
	refresh, err := Generate(m.refresh, id)
	if err != nil {
		return TokenPair{}, fmt.Errorf("refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccess valida un access token.
func (m *Manager) ParseAccess(token string) (*Claims, error) {
	return Parse(m.access, token)
}

// ParseRefresh valida un refresh token.
func (m *Manager) ParseRefresh(token string) (*Claims, error) {
	return Parse(m.refresh, token)
}
