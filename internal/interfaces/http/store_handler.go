package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/application/usecase"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// photoField nombre del campo multipart con la foto de la tienda.
const photoField = "photo"

// StoreHandler maneja /api/stores y el panel del dueño.
type StoreHandler struct {
	uc    *usecase.StoreUseCase
	owner *usecase.OwnerUseCase
	v     *validation.Validator
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, owner *usecase.OwnerUseCase, v *validation.Validator) *StoreHandler {
	return &StoreHandler{uc: uc, owner: owner, v: v}
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Produce      json
// @Param        page         query  int     false  "Página (1)"
// @Param        limit        query  int     false  "Tamaño de página (12, máx 100)"
// @Param        search       query  string  false  "Nombre o dirección"
// @Param        category     query  string  false  "Categoría"
// @Param        minRating    query  number  false  "Promedio mínimo"
// @Param        maxRating    query  number  false  "Promedio máximo"
// @Param        is_active    query  bool    false  "Activas (true)"
// @Param        is_verified  query  bool    false  "Verificadas"
// @Param        sortBy       query  string  false  "name|rating|rating_count|created_at|updated_at|category"
// @Param        sortOrder    query  string  false  "asc|desc"
// @Success      200  {object}  dto.APIResponse{data=dto.StoreListResponse}
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.StoreListQuery{
		PageQuery:  pageQuery(c),
		Search:     strings.TrimSpace(c.Query("search")),
		Category:   strings.TrimSpace(c.Query("category")),
		MinRating:  queryFloat(c, "minRating"),
		MaxRating:  queryFloat(c, "maxRating"),
		IsActive:   queryBool(c, "is_active"),
		IsVerified: queryBool(c, "is_verified"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// ListForUser godoc
// @Summary      Tiendas activas para calificar
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.StoreResponse}
// @Router       /api/stores/user [get]
func (h *StoreHandler) ListForUser(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"stores": out})
}

// Categories godoc
// @Summary      Categorías disponibles
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]string}
// @Router       /api/stores/categories [get]
func (h *StoreHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"categories": out})
}

// Get godoc
// @Summary      Detalle de tienda
// @Tags         stores
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse{data=dto.StoreDetailResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body   body      dto.CreateStoreRequest  true   "Datos de la tienda"
// @Param        photo  formData  file                    false  "Foto (imagen)"
// @Success      201  {object}  dto.APIResponse{data=dto.StoreResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	photo, err := photoUpload(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in, photo)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "Store created successfully", fiber.Map{"store": out})
}

// Update godoc
// @Summary      Actualizar tienda (parcial)
// @Tags         stores
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      int                     true   "ID de la tienda"
// @Param        body   body      dto.UpdateStoreRequest  true   "Campos a modificar"
// @Param        photo  formData  file                    false  "Foto nueva"
// @Success      200  {object}  dto.APIResponse{data=dto.StoreResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateStoreRequest
	if err := bind(c, h.v, &in); err != nil {
		return err
	}
	photo, err := photoUpload(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), id, in, photo)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store updated successfully", fiber.Map{"store": out})
}

// Delete godoc
// @Summary      Eliminar tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.APIResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), actor(c), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "Store deleted successfully", nil)
}

// OwnerStores godoc
// @Summary      Tiendas del dueño autenticado
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.OwnerStoreItem}
// @Router       /api/stores/owner [get]
func (h *StoreHandler) OwnerStores(c *fiber.Ctx) error {
	out, err := h.owner.Stores(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"stores": out})
}

// OwnerStats godoc
// @Summary      Resumen del panel del dueño
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.OwnerStatsResponse}
// @Router       /api/stores/owner/stats [get]
func (h *StoreHandler) OwnerStats(c *fiber.Ctx) error {
	out, err := h.owner.Stats(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", out)
}

// OwnerCustomers godoc
// @Summary      Clientes que calificaron las tiendas del dueño
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.OwnerCustomerResponse}
// @Router       /api/stores/owner/customers [get]
func (h *StoreHandler) OwnerCustomers(c *fiber.Ctx) error {
	out, err := h.owner.Customers(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "", fiber.Map{"customers": out})
}

// photoUpload extrae la foto de una petición multipart; nil si no hay.
// El tamaño y el tipo los valida el almacenamiento.
func photoUpload(c *fiber.Ctx) (*ports.Upload, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errInvalidBody.WithDetail(err.Error())
	}
	files := form.File[photoField]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, errInvalidBody.WithDetail(err.Error())
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errInvalidBody.WithDetail(err.Error())
	}
	return &ports.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
