package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/application/usecase"
	"github.com/rs/zerolog/log"
)

// CarHandler maneja las peticiones HTTP del catálogo de cars.
// Los errores de dominio se devuelven tal cual: el ErrorHandler central les
// asigna status y cuerpo.
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Home godoc
// @Summary      Saludo del servicio
// @Tags         cars
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/cars/home [get]
func (h *CarHandler) Home(c *fiber.Ctx) error {
	return c.SendString("Welcome to Car Dealer!")
}

// GetAll godoc
// @Summary      Listar todos los cars
// @Tags         cars
// @Produce      json
// @Success      200  {array}  dto.CarResponse
// @Router       /api/cars/all [get]
func (h *CarHandler) GetAll(c *fiber.Ctx) error {
	cars, err := h.uc.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(cars)
}

// GetByID godoc
// @Summary      Obtener car por id
// @Tags         cars
// @Produce      json
// @Param        id   path  int  true  "ID del car"
// @Success      200  {object}  dto.CarResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	car, err := h.uc.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(car)
}

// Create godoc
// @Summary      Crear car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CarRequest  true  "Datos del car"
// @Success      201   {object}  dto.CarResponse
// @Failure      400   {object}  dto.APIError
// @Router       /api/cars/ [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CarRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	car, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(car)
}

// Update godoc
// @Summary      Actualizar car (sobreescribe la fila completa)
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del car"
// @Param        body  body  dto.CarRequest  true  "Datos del car"
// @Success      200   {object}  dto.CarResponse
// @Failure      404   {object}  dto.APIError
// @Router       /api/cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.CarRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	log.Info().Int64("id", id).Interface("car", in).Msg("update car")
	car, err := h.uc.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(car)
}

// Delete godoc
// @Summary      Eliminar car
// @Tags         cars
// @Param        id  path  int  true  "ID del car"
// @Success      200
// @Failure      404  {object}  dto.APIError
// @Router       /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// parseID lee el path param id como entero.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id: "+c.Params("id"))
	}
	return id, nil
}
