package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// AdminRatingHandler moderación de calificaciones.
type AdminRatingHandler struct {
	uc *usecase.AdminRatingUseCase
	v  *validation.Validator
}

func NewAdminRatingHandler(uc *usecase.AdminRatingUseCase, v *validation.Validator) *AdminRatingHandler {
	return &AdminRatingHandler{uc: uc, v: v}
}

// List godoc
// @Summary      Listar calificaciones (moderación)
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"
// @Param        limit     query  int     false  "Tamaño (10, máx 100)"
// @Param        search    query  string  false  "Reseña, usuario o tienda"
// @Param        rating    query  int     false  "Valor exacto 1..5"
// @Param        store     query  int     false  "ID de tienda"
// @Param        user      query  int     false  "ID de usuario"
// @Param        status    query  string  false  "all|pending|approved|rejected"
// @Param        dateFrom  query  string  false  "YYYY-MM-DD"
// @Param        dateTo    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminRatingListResponse}
// @Router       /api/admin/ratings [get]
func (h *AdminRatingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.AdminRatingListQuery{
		PageQuery: pageQuery(c),
		Search:    strings.TrimSpace(c.Query("search")),
		Rating:    c.QueryInt("rating"),
		StoreID:   queryInt64(c, "store"),
		UserID:    queryInt64(c, "user"),
		Status:    c.Query("status"),
		DateFrom:  queryDate(c, "dateFrom"),
		DateTo:    queryDate(c, "dateTo"),
	})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Attention godoc
// @Summary      Calificaciones a revisar
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.RatingsAttentionResponse}
// @Router       /api/admin/ratings/attention [get]
func (h *AdminRatingHandler) Attention(c *fiber.Ctx) error {
	out, err := h.uc.Attention(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Approve godoc
// @Summary      Aprobar calificación
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la calificación"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ratings/{id}/approve [put]
func (h *AdminRatingHandler) Approve(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Approve(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Rating approved successfully", fiber.Map{"rating": out})
}

// Reject godoc
// @Summary      Rechazar calificación
// @Tags         admin-ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true   "ID de la calificación"
// @Param        body  body  dto.RejectRequest  false  "reason (por defecto \"Rejected by admin\")"
// @Success      200   {object}  dto.APIResponse{data=dto.RatingResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/ratings/{id}/reject [put]
func (h *AdminRatingHandler) Reject(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.RejectRequest
	if len(c.Body()) > 0 {
		if err := bind(c, h.v, &in); err != nil {
			return err
		}
	}
	out, err := h.uc.Reject(c.UserContext(), id, in.Reason)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Rating rejected successfully", fiber.Map{"rating": out})
}

// Delete godoc
// @Summary      Eliminar calificación (admin)
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la calificación"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ratings/{id} [delete]
func (h *AdminRatingHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Rating deleted successfully", nil)
}

// Bulk godoc
// @Summary      Moderación en lote
// @Tags         admin-ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkRatingsRequest  true  "operation, ratingIds, reason"
// @Success      200   {object}  dto.APIResponse{data=dto.BulkRatingsResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/ratings/bulk [post]
func (h *AdminRatingHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkRatingsRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Bulk(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Bulk "+in.Operation+" completed", out)
}
