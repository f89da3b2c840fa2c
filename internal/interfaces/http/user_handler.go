package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Concesionario-api/internal/application/auth"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
)

// UserHandler maneja registro y login.
type UserHandler struct {
	uc *auth.AuthUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.APIError
// @Router       /api/users/ [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión; responde el JWT como texto plano
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.APIError
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	token, err := h.uc.Login(in)
	if err != nil {
		return err
	}
	return c.SendString(token)
}
