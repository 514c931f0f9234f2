package domain

import "errors"

// Categorías de error de dominio (sin dependencias externas).
// La capa HTTP decide el código de estado a partir de la categoría.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// Error es un error de dominio con etiqueta pública (Msg) y detalle opcional.
// errors.Is(err, domain.ErrNotFound) funciona gracias a Unwrap.
type Error struct {
	Kind   error
	Msg    string
	Detail string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// NewError construye un error de la categoría indicada.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WithDetail devuelve una copia con mensaje descriptivo.
func (e *Error) WithDetail(detail string) *Error {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Errores frecuentes con mensaje público fijo.
var (
	ErrUserNotFound       = NewError(ErrNotFound, "User not found")
	ErrStoreNotFound      = NewError(ErrNotFound, "Store not found")
	ErrRatingNotFound     = NewError(ErrNotFound, "Rating not found")
	ErrFavoriteNotFound   = NewError(ErrNotFound, "Favorite not found")
	ErrEmailAlreadyExists = NewError(ErrConflict, "Email already exists")
	ErrInvalidCredentials = NewError(ErrUnauthorized, "Invalid email or password")
	ErrAccountDeactivated = NewError(ErrUnauthorized, "Account is deactivated")
)
