package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// ErrorHandler es el manejador central de errores de Fiber: los handlers
// devuelven errores de dominio y aquí se traducen, en un solo lugar, al cuerpo
// APIError {message, statusCode, path, timestamp}.
//
// Mapeo: not-found de dominio -> 404; errores de fiber conservan su status;
// todo lo demás (validación, conflicto, rol inválido y cualquier fallo no
// clasificado) -> 400. El catch-all en 400 es una política gruesa pero
// deliberada de este sistema.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest

	var notFound *domain.NotFoundError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &notFound):
		status = fiber.StatusNotFound
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	}

	log.Warn().
		Int("status", status).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(err.Error())

	return c.Status(status).JSON(dto.APIError{
		Message:    err.Error(),
		StatusCode: status,
		Path:       c.Path(),
		Timestamp:  time.Now(),
	})
}
