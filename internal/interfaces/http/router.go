package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cesge/control-equipos/internal/application/auth"
	"github.com/cesge/control-equipos/internal/application/movimientos"
	"github.com/cesge/control-equipos/internal/application/usecase"
	"github.com/cesge/control-equipos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovimientoUC *movimientos.UseCase
	ScanUC       *movimientos.ScanUseCase
	PersonaUC    *usecase.PersonaUseCase
	EquipoUC     *usecase.EquipoUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos (protegido). /scan es el flujo principal en portería.
	movGroup := protected.Group("/movimientos")
	movHandler := NewMovimientoHandler(deps.MovimientoUC, deps.ScanUC)
	movGroup.Post("/scan", movHandler.Scan)
	movGroup.Get("/resumen", movHandler.Resumen)
	movGroup.Get("/", movHandler.List)
	movGroup.Post("/", movHandler.CrearIngreso)
	movGroup.Get("/:id", movHandler.GetByID)
	movGroup.Put("/:id/salida", movHandler.RegistrarSalida)
	movGroup.Delete("/:id", RequireRole(entity.RoleAdmin), movHandler.Anular)

	// Personas (protegido)
	personas := protected.Group("/personas")
	personaHandler := NewPersonaHandler(deps.PersonaUC)
	personas.Post("/", personaHandler.Create)
	personas.Get("/", personaHandler.List)
	personas.Get("/:documento", personaHandler.GetByDocumento)
	personas.Put("/:documento", personaHandler.Update)
	personas.Delete("/:documento", RequireRole(entity.RoleAdmin), personaHandler.Delete)

	// Equipos (protegido)
	equipos := protected.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	equipos.Post("/", equipoHandler.Create)
	equipos.Get("/", equipoHandler.List)
	equipos.Get("/:serial", equipoHandler.GetBySerial)
	equipos.Put("/:serial", equipoHandler.Update)
	equipos.Delete("/:serial", RequireRole(entity.RoleAdmin), equipoHandler.Delete)
}
