package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
	"github.com/pankaj-shinde04/store-rating/pkg/logger"
)

var (
	errInvalidBody = domain.NewError(domain.ErrInvalidInput, "Invalid request body")
	errInvalidID   = domain.NewError(domain.ErrInvalidInput, "Invalid ID")
)

func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

func errorBody(c *fiber.Ctx, status int, label, message string, details any) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: label, Message: message, Details: details})
}

// statusOf código HTTP de una categoría de error de dominio.
func statusOf(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(kind, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(kind, domain.ErrDuplicate), errors.Is(kind, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(kind, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(kind, domain.ErrForbidden):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler traduce cualquier error devuelto por un handler o middleware al sobre de error.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			ve *validation.Errors
			de *domain.Error
			fe *fiber.Error
		)
		switch {
		case errors.As(err, &ve):
			return errorBody(c, fiber.StatusBadRequest, "Validation failed", ve.Error(), ve.Fields)
		case errors.As(err, &de):
			status := statusOf(de.Kind)
			if status == fiber.StatusInternalServerError {
				break
			}
			return errorBody(c, status, de.Msg, de.Detail, nil)
		case errors.As(err, &fe):
			if fe.Code < fiber.StatusInternalServerError {
				return errorBody(c, fe.Code, fe.Message, "", nil)
			}
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate),
			errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
			return errorBody(c, statusOf(err), err.Error(), "", nil)
		}

		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return errorBody(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil)
	}
}

// NotFound responde a rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return errorBody(c, fiber.StatusNotFound, "Route not found", "Cannot "+c.Method()+" "+c.OriginalURL(), nil)
}

// bind parsea el cuerpo (JSON, form o multipart) y valida el DTO.
func bind(c *fiber.Ctx, v *validation.Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody.WithDetail(err.Error())
	}
	return v.Struct(dst)
}

// idParam lee un parámetro de ruta numérico positivo.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
