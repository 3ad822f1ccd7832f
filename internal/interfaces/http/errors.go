package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP correspondiente:
// no encontrado -> 404, entrada inválida -> 400, regla de negocio (tipo de
// movimiento, stock insuficiente) -> 422, resto -> 500. Los errores de
// infraestructura se loguean con un trace id y nunca se disfrazan de errores
// de negocio.
func respondError(c *fiber.Ctx, err error) error {
	traceID := uuid.New().String()
	body := dto.ErrorResponse{
		Message:   err.Error(),
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		body.Code = "NOT_FOUND"
		return c.Status(fiber.StatusNotFound).JSON(body)
	case errors.Is(err, domain.ErrInvalidInput):
		body.Code = "VALIDATION"
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, domain.ErrInvalidMovementType):
		body.Code = "INVALID_MOVEMENT_TYPE"
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	case errors.Is(err, domain.ErrInsufficientStock):
		body.Code = "INSUFFICIENT_STOCK"
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	}

	log.Error().Err(err).Str("trace_id", traceID).Str("path", c.Path()).Msg("error no manejado")
	body.Code = "INTERNAL"
	body.Message = "ocurrió un error inesperado, intente de nuevo más tarde"
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// badRequest respuesta 400 con código y mensaje explícitos (cuerpo o parámetros inválidos).
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
