package dto

import (
	"math"

	"github.com/shopspring/decimal"
)

// PageQuery paginación por número de página.
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize aplica página 1 y el límite por defecto, y recorta el límite al máximo.
// La página se acota para que el offset quepa en un int32; más allá sólo hay páginas vacías.
func (p PageQuery) Normalize(defLimit, maxLimit int) PageQuery {
	if p.Limit < 1 {
		p.Limit = defLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if maxPage := math.MaxInt32 / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// Offset filas a saltar para la página actual.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página de los listados públicos.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination calcula los metadatos; hay página siguiente si page*limit < total.
func NewPagination(p PageQuery, total int64) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		CurrentPage: p.Page,
		TotalPages:  pages,
		Limit:       p.Limit,
		HasNextPage: int64(p.Page)*int64(p.Limit) < total,
		HasPrevPage: p.Page > 1,
	}
}

// StorePagination paginación del listado público de tiendas.
type StorePagination struct {
	Pagination
	TotalStores int64 `json:"totalStores"`
}

// RatingPagination paginación de las calificaciones de un usuario.
type RatingPagination struct {
	Pagination
	TotalRatings int64 `json:"totalRatings"`
}

// AdminPagination paginación de los listados del panel de administración.
type AdminPagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewAdminPagination calcula el total de páginas.
func NewAdminPagination(p PageQuery, total int64) AdminPagination {
	return AdminPagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: NewPagination(p, total).TotalPages,
	}
}

// Round1 redondea un promedio a un decimal para la respuesta.
func Round1(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

// APIResponse sobre de las respuestas exitosas.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse sobre de las respuestas de error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}
