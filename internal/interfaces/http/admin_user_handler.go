package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// AdminUserHandler gestión de usuarios desde /api/admin/users.
type AdminUserHandler struct {
	uc *usecase.AdminUserUseCase
	v  *validation.Validator
}

func NewAdminUserHandler(uc *usecase.AdminUserUseCase, v *validation.Validator) *AdminUserHandler {
	return &AdminUserHandler{uc: uc, v: v}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"
// @Param        limit      query  int     false  "Tamaño (10, máx 100)"
// @Param        search     query  string  false  "Nombre, email o dirección"
// @Param        role       query  string  false  "normal_user|store_owner|admin"
// @Param        status     query  string  false  "active|inactive"
// @Param        dateFrom   query  string  false  "YYYY-MM-DD"
// @Param        dateTo     query  string  false  "YYYY-MM-DD"
// @Param        sortBy     query  string  false  "created_at|name|email"
// @Param        sortOrder  query  string  false  "asc|desc"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminUserListResponse}
// @Router       /api/admin/users [get]
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.AdminUserListQuery{
		PageQuery: pageQuery(c),
		Search:    strings.TrimSpace(c.Query("search")),
		Role:      c.Query("role"),
		Status:    c.Query("status"),
		DateFrom:  queryDate(c, "dateFrom"),
		DateTo:    queryDate(c, "dateTo"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Stats godoc
// @Summary      Conteos de usuarios
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.UserCountsResponse}
// @Router       /api/admin/users/stats [get]
func (h *AdminUserHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Get godoc
// @Summary      Detalle de usuario
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminUserResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *AdminUserHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"user": out})
}

// Create godoc
// @Summary      Crear usuario
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminCreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.APIResponse{data=dto.AdminUserResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminUserHandler) Create(c *fiber.Ctx) error {
	var in dto.AdminCreateUserRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "User created successfully", fiber.Map{"user": out})
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del usuario"
// @Param        body  body  dto.AdminUpdateUserRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.AdminUserResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminUserHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.AdminUpdateUserRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "User updated successfully", fiber.Map{"user": out})
}

// Delete godoc
// @Summary      Eliminar usuario (borra en cascada calificaciones y tiendas)
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.APIResponse{data=dto.DeleteUserResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "User deleted successfully", out)
}

// Bulk godoc
// @Summary      Activar o desactivar usuarios en lote
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUsersRequest  true  "userIds, operation, reason"
// @Success      200   {object}  dto.APIResponse{data=dto.BulkUsersResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/users/bulk [post]
func (h *AdminUserHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkUsersRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Bulk(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Bulk "+in.Operation+" completed", out)
}

// Recent godoc
// @Summary      Últimos usuarios registrados
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo (5, máx 50)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.UserResponse}
// @Router       /api/admin/recent-users [get]
func (h *AdminUserHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"users": out})
}
