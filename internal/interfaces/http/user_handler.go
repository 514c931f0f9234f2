package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// UserHandler maneja /api/users: perfil, panel y favoritos del normal_user.
type UserHandler struct {
	uc        *usecase.UserUseCase
	favorites *usecase.FavoriteUseCase
	v         *validation.Validator
}

func NewUserHandler(uc *usecase.UserUseCase, favorites *usecase.FavoriteUseCase, v *validation.Validator) *UserHandler {
	return &UserHandler{uc: uc, favorites: favorites, v: v}
}

// Profile godoc
// @Summary      Perfil propio
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"user": out})
}

// UpdateProfile godoc
// @Summary      Editar nombre y dirección
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserProfileRequest  true  "name, address"
// @Success      200   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UserProfileRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{"user": out})
}

// Stats godoc
// @Summary      Panel del usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.UserStatsResponse}
// @Router       /api/users/stats [get]
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Ratings godoc
// @Summary      Calificaciones propias paginadas
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página (1)"
// @Param        limit  query  int  false  "Tamaño (10, máx 100)"
// @Success      200  {object}  dto.APIResponse{data=dto.UserRatingsResponse}
// @Router       /api/users/ratings [get]
func (h *UserHandler) Ratings(c *fiber.Ctx) error {
	out, err := h.uc.Ratings(c.UserContext(), GetUserID(c), pageQuery(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Favorites godoc
// @Summary      Tiendas favoritas
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo (10, máx 100)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.FavoriteStoreResponse}
// @Router       /api/users/favorites [get]
func (h *UserHandler) Favorites(c *fiber.Ctx) error {
	out, err := h.favorites.List(c.UserContext(), GetUserID(c), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"favorites": out})
}

// AddFavorite godoc
// @Summary      Agregar a favoritos
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FavoriteRequest  true  "storeId"
// @Success      201   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/favorites [post]
func (h *UserHandler) AddFavorite(c *fiber.Ctx) error {
	var in dto.FavoriteRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	if err := h.favorites.Add(c.UserContext(), GetUserID(c), in.StoreID); err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "Store added to favorites", nil)
}

// RemoveFavorite godoc
// @Summary      Quitar de favoritos (storeId en el cuerpo o en la ruta)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  int  false  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/favorites/{storeId} [delete]
func (h *UserHandler) RemoveFavorite(c *fiber.Ctx) error {
	var in dto.FavoriteRequest
	if c.Params("storeId") != "" {
		id, err := idParam(c, "storeId")
		if err != nil {
			return err
		}
		in.StoreID = id
	} else if err := bind(c, h.v, &in); err != nil {
		return err
	}
	if err := h.favorites.Remove(c.UserContext(), GetUserID(c), in.StoreID); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store removed from favorites", nil)
}
