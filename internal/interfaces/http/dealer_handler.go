package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/application/usecase"
)

// DealerHandler maneja las peticiones HTTP de dealers.
type DealerHandler struct {
	uc *usecase.DealerUseCase
}

// NewDealerHandler construye el handler.
func NewDealerHandler(uc *usecase.DealerUseCase) *DealerHandler {
	return &DealerHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar todos los dealers
// @Tags         dealers
// @Produce      json
// @Success      200  {array}  dto.DealerResponse
// @Router       /api/dealers/all [get]
func (h *DealerHandler) GetAll(c *fiber.Ctx) error {
	dealers, err := h.uc.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(dealers)
}

// GetByID godoc
// @Summary      Obtener dealer por id
// @Tags         dealers
// @Produce      json
// @Param        id   path  int  true  "ID del dealer"
// @Success      200  {object}  dto.DealerResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/dealers/{id} [get]
func (h *DealerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dealer, err := h.uc.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(dealer)
}

// Create godoc
// @Summary      Crear dealer
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DealerRequest  true  "name"
// @Success      201   {object}  dto.DealerResponse
// @Failure      400   {object}  dto.APIError
// @Router       /api/dealers/create [post]
func (h *DealerHandler) Create(c *fiber.Ctx) error {
	var in dto.DealerRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	dealer, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dealer)
}

// Update godoc
// @Summary      Actualizar el nombre de un dealer
// @Tags         dealers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del dealer"
// @Param        body  body  dto.DealerRequest  true  "name"
// @Success      200   {object}  dto.DealerResponse
// @Failure      404   {object}  dto.APIError
// @Router       /api/dealers/update/{id} [put]
func (h *DealerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.DealerRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	dealer, err := h.uc.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(dealer)
}

// Delete godoc
// @Summary      Eliminar dealer (sus cars caen en cascada)
// @Tags         dealers
// @Produce      plain
// @Param        id  path  int  true  "ID del dealer"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.APIError
// @Router       /api/dealers/delete/{id} [delete]
func (h *DealerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Dealer deleted with ID %d", id))
}
