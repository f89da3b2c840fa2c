package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Concesionario-api/internal/application/auth"
	"github.com/jhoicas/Concesionario-api/internal/application/usecase"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CarUC     *usecase.CarUseCase
	DealerUC  *usecase.DealerUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	// SecurityEnforced aplica las reglas de rol a las rutas de escritura.
	// En false (configuración activa) todas las rutas permiten acceso anónimo.
	SecurityEnforced bool
}

// Router registra las rutas de la API.
//
// Reglas de rol cuando SecurityEnforced está activo (lecturas siempre públicas):
//   - POST cars/dealers: cualquier usuario autenticado.
//   - PUT y DELETE: rol DEALER o ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// protect arma la cadena de middlewares para una ruta de escritura; vacía
	// cuando la seguridad no se aplica.
	protect := func(roles ...string) []fiber.Handler {
		if !deps.SecurityEnforced {
			return nil
		}
		chain := []fiber.Handler{AuthMiddleware(deps.JWTSecret)}
		if len(roles) > 0 {
			chain = append(chain, RequireRole(roles...))
		}
		return chain
	}
	writerRoles := []string{entity.RoleDealer, entity.RoleAdmin}

	// Users (público)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Register)
	users.Post("/login", userHandler.Login)

	// Cars
	cars := api.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC)
	cars.Get("/home", carHandler.Home)
	cars.Get("/all", carHandler.GetAll)
	cars.Post("/", append(protect(), carHandler.Create)...)
	cars.Get("/:id", carHandler.GetByID)
	cars.Put("/:id", append(protect(writerRoles...), carHandler.Update)...)
	cars.Delete("/:id", append(protect(writerRoles...), carHandler.Delete)...)

	// Dealers
	dealers := api.Group("/dealers")
	dealerHandler := NewDealerHandler(deps.DealerUC)
	dealers.Get("/all", dealerHandler.GetAll)
	dealers.Post("/create", append(protect(), dealerHandler.Create)...)
	dealers.Get("/:id", dealerHandler.GetByID)
	dealers.Put("/update/:id", append(protect(writerRoles...), dealerHandler.Update)...)
	dealers.Delete("/delete/:id", append(protect(writerRoles...), dealerHandler.Delete)...)
}
