package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/almacen-api/internal/application/dto"
)

var validate = validator.New()

// parseBody deserializa el cuerpo JSON y aplica las reglas de los tags
// `validate` del DTO. Si algo falla responde 400 y devuelve ok=false.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(out); err != nil {
		return false, badRequest(c, "VALIDATION", err.Error())
	}
	return true, nil
}

// pageFromQuery extrae la paginación de la query string y la normaliza
// (page_number >= 1, 1 <= page_size <= 50). El calculador de paginación no
// normaliza nada: este borde es el único responsable.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		PageNumber: c.QueryInt("page_number", 1),
		PageSize:   c.QueryInt("page_size", dto.DefaultPageSize),
	}
	page.Normalize()
	return page
}
