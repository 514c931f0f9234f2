package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// RatingHandler maneja /api/ratings.
type RatingHandler struct {
	uc *usecase.RatingUseCase
	v  *validation.Validator
}

// NewRatingHandler construye el handler.
func NewRatingHandler(uc *usecase.RatingUseCase, v *validation.Validator) *RatingHandler {
	return &RatingHandler{uc: uc, v: v}
}

// Index godoc
// @Summary      Índice de endpoints de calificaciones
// @Tags         ratings
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/ratings [get]
func (h *RatingHandler) Index(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "Ratings API", fiber.Map{"endpoints": fiber.Map{
		"submit":      "POST /api/ratings",
		"mine":        "GET /api/ratings/user",
		"byStore":     "GET /api/ratings/store/:storeId",
		"delete":      "DELETE /api/ratings/:ratingId",
		"ownerAnswer": "PUT /api/ratings/:ratingId/response",
	}})
}

// Submit godoc
// @Summary      Calificar una tienda (crea o reemplaza la calificación propia)
// @Tags         ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRatingRequest  true  "store_id, rating_value, review_text"
// @Success      201   {object}  dto.APIResponse{data=dto.SubmitRatingResponse}
// @Success      200   {object}  dto.APIResponse{data=dto.SubmitRatingResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ratings [post]
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateRatingRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Submit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	if out.Created {
		return ok(c, fiber.StatusCreated, "Rating submitted successfully", out)
	}
	return ok(c, fiber.StatusOK, "Rating updated successfully", out)
}

// ListMine godoc
// @Summary      Calificaciones del usuario autenticado
// @Tags         ratings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.RatingResponse}
// @Router       /api/ratings/user [get]
func (h *RatingHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"ratings": out})
}

// ListForStore godoc
// @Summary      Calificaciones de una tienda propia
// @Tags         ratings
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse{data=[]dto.RatingResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ratings/store/{storeId} [get]
func (h *RatingHandler) ListForStore(c *fiber.Ctx) error {
	storeID, err := idParam(c, "storeId")
	if err != nil {
		return err
	}
	out, err := h.uc.ListForStore(c.UserContext(), actor(c), storeID)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"ratings": out})
}

// Delete godoc
// @Summary      Eliminar calificación propia
// @Tags         ratings
// @Security     Bearer
// @Produce      json
// @Param        ratingId  path  int  true  "ID de la calificación"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ratings/{ratingId} [delete]
func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "ratingId")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), actor(c), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Rating deleted successfully", nil)
}

// Respond godoc
// @Summary      Responder una reseña de una tienda propia
// @Tags         ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ratingId  path  int                       true  "ID de la calificación"
// @Param        body      body  dto.OwnerResponseRequest  true  "response"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ratings/{ratingId}/response [put]
func (h *RatingHandler) Respond(c *fiber.Ctx) error {
	id, err := idParam(c, "ratingId")
	if err != nil {
		return err
	}
	var in dto.OwnerResponseRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Respond(c.UserContext(), actor(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Response saved successfully", fiber.Map{"rating": out})
}
