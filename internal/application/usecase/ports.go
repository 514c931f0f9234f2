package usecase

import (
	"context"

	"github.com/pankaj-shinde04/store-rating/internal/domain/entity"
	"github.com/pankaj-shinde04/store-rating/internal/domain/repository"
)

// StoreTxRunner ejecuta fn dentro de una transacción con un repositorio de tiendas atado a ella.
type StoreTxRunner interface {
	RunStore(ctx context.Context, fn func(stores repository.StoreRepository) error) error
}

// RatingRecorder recibe los eventos de calificaciones para métricas.
type RatingRecorder interface {
	RatingSubmitted(created bool)
	RatingsModerated(operation string, n int64)
}

type nopRecorder struct{}

func (nopRecorder) RatingSubmitted(bool)           {}
func (nopRecorder) RatingsModerated(string, int64) {}

// Actor usuario autenticado que ejecuta la operación.
type Actor struct {
	ID   int64
	Role string
}

// IsAdmin indica si el actor es administrador.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }
