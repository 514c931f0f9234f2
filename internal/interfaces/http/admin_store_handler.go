package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// AdminStoreHandler gestión y aprobación de tiendas desde /api/admin/stores.
type AdminStoreHandler struct {
	uc *usecase.AdminStoreUseCase
	v  *validation.Validator
}

func NewAdminStoreHandler(uc *usecase.AdminStoreUseCase, v *validation.Validator) *AdminStoreHandler {
	return &AdminStoreHandler{uc: uc, v: v}
}

// List godoc
// @Summary      Listar tiendas (admin)
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"
// @Param        limit      query  int     false  "Tamaño (10, máx 100)"
// @Param        search     query  string  false  "Nombre, dirección o dueño"
// @Param        category   query  string  false  "Categoría"
// @Param        status     query  string  false  "active|inactive"
// @Param        dateFrom   query  string  false  "YYYY-MM-DD"
// @Param        dateTo     query  string  false  "YYYY-MM-DD"
// @Param        sortBy     query  string  false  "created_at|name|avg_rating"
// @Param        sortOrder  query  string  false  "asc|desc"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminStoreListResponse}
// @Router       /api/admin/stores [get]
func (h *AdminStoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.AdminStoreListQuery{
		PageQuery: pageQuery(c),
		Search:    strings.TrimSpace(c.Query("search")),
		Category:  strings.TrimSpace(c.Query("category")),
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
// @Summary      Conteos de tiendas
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.StoreCountsResponse}
// @Router       /api/admin/stores/stats [get]
func (h *AdminStoreHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Attention godoc
// @Summary      Tiendas que requieren revisión
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.AdminStoreResponse}
// @Router       /api/admin/stores/attention [get]
func (h *AdminStoreHandler) Attention(c *fiber.Ctx) error {
	out, err := h.uc.Attention(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"stores": out})
}

// Get godoc
// @Summary      Detalle de tienda (admin)
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminStoreResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id} [get]
func (h *AdminStoreHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"store": out})
}

// Analytics godoc
// @Summary      Métricas de una tienda
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse{data=dto.StoreAnalyticsResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id}/analytics [get]
func (h *AdminStoreHandler) Analytics(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Analytics(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// Create godoc
// @Summary      Crear tienda para un store_owner
// @Tags         admin-stores
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body   body      dto.AdminCreateStoreRequest  true   "Datos de la tienda y owner_id"
// @Param        photo  formData  file                         false  "Foto"
// @Success      201  {object}  dto.APIResponse{data=dto.StoreResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/stores [post]
func (h *AdminStoreHandler) Create(c *fiber.Ctx) error {
	var in dto.AdminCreateStoreRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	photo, err := photoUpload(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in, photo)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "Store created successfully", fiber.Map{"store": out})
}

// Update godoc
// @Summary      Editar tienda (admin)
// @Tags         admin-stores
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      int                          true   "ID de la tienda"
// @Param        body   body      dto.AdminUpdateStoreRequest  true   "Datos completos"
// @Param        photo  formData  file                         false  "Foto nueva"
// @Success      200  {object}  dto.APIResponse{data=dto.StoreResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id} [put]
func (h *AdminStoreHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.AdminUpdateStoreRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	photo, err := photoUpload(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in, photo)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store updated successfully", fiber.Map{"store": out})
}

// Approve godoc
// @Summary      Aprobar tienda
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse{data=dto.AdminStoreResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id}/approve [put]
func (h *AdminStoreHandler) Approve(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Approve(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store approved successfully", fiber.Map{"store": out})
}

// Reject godoc
// @Summary      Rechazar tienda
// @Tags         admin-stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la tienda"
// @Param        body  body  dto.RejectStoreRequest  true  "reason"
// @Success      200   {object}  dto.APIResponse{data=dto.AdminStoreResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id}/reject [put]
func (h *AdminStoreHandler) Reject(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.RejectStoreRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Reject(c.UserContext(), id, in.Reason)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store rejected successfully", fiber.Map{"store": out})
}

// Delete godoc
// @Summary      Eliminar tienda (admin)
// @Tags         admin-stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stores/{id} [delete]
func (h *AdminStoreHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store deleted successfully", nil)
}

// Bulk godoc
// @Summary      Aprobar o rechazar tiendas en lote
// @Tags         admin-stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStoresRequest  true  "storeIds, operation, reason"
// @Success      200   {object}  dto.APIResponse{data=dto.BulkStoresResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/stores/bulk [post]
func (h *AdminStoreHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkStoresRequest
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
// @Summary      Últimas tiendas creadas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo (5, máx 50)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.StoreResponse}
// @Router       /api/admin/recent-stores [get]
func (h *AdminStoreHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"stores": out})
}
