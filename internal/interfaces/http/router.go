package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/auth"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/application/usecase"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BoxTypeUC  *usecase.BoxTypeUseCase
	TrayTypeUC *usecase.TrayTypeUseCase
	ShipdocUC  *usecase.ShipdocUseCase
	UserUC     *usecase.UserUseCase
	Core       *packing.ContainmentUseCase
	Export     *packing.ExportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// RBAC: cualquier rol autenticado lee; admin y operador mutan el inventario;
// solo admin gestiona datos de referencia y usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	mutador := RequireRole(entity.RoleAdmin, entity.RoleOperador)
	soloAdmin := RequireRole(entity.RoleAdmin)

	// Auth: login público, registro detrás de token (el caso de uso exige admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tipos de caja (referencia)
	boxTypes := protected.Group("/box-types")
	boxTypeHandler := NewBoxTypeHandler(deps.BoxTypeUC)
	boxTypes.Get("/", boxTypeHandler.List)
	boxTypes.Get("/resolve", boxTypeHandler.Resolve)
	boxTypes.Get("/:uid", boxTypeHandler.GetByID)
	boxTypes.Post("/", soloAdmin, boxTypeHandler.Create)
	boxTypes.Delete("/:uid", soloAdmin, boxTypeHandler.Delete)

	// Tipos de bandeja (referencia)
	trayTypes := protected.Group("/tray-types")
	trayTypeHandler := NewTrayTypeHandler(deps.TrayTypeUC)
	trayTypes.Get("/", trayTypeHandler.List)
	trayTypes.Get("/resolve", trayTypeHandler.Resolve)
	trayTypes.Get("/:uid", trayTypeHandler.GetByID)
	trayTypes.Post("/", soloAdmin, trayTypeHandler.Create)
	trayTypes.Put("/:uid", soloAdmin, trayTypeHandler.UpdateMaxDrive)
	trayTypes.Delete("/:uid", soloAdmin, trayTypeHandler.Delete)

	// Documentos de despacho (referencia)
	shipdocs := protected.Group("/shipdocs")
	shipdocHandler := NewShipdocHandler(deps.ShipdocUC)
	shipdocs.Get("/", shipdocHandler.List)
	shipdocs.Get("/resolve", shipdocHandler.Resolve)
	shipdocs.Get("/:uid", shipdocHandler.GetByID)
	shipdocs.Post("/", soloAdmin, shipdocHandler.Create)
	shipdocs.Put("/:uid", soloAdmin, shipdocHandler.UpdateContact)
	shipdocs.Delete("/:uid", soloAdmin, shipdocHandler.Delete)

	// Cajas: ciclo de vida, despacho, bandejas anidadas y exportación
	boxes := protected.Group("/boxes")
	boxHandler := NewBoxHandler(deps.Core, deps.Export)
	boxes.Get("/", boxHandler.List)
	boxes.Get("/:uid", boxHandler.GetByID)
	boxes.Get("/:uid/trays", boxHandler.ListTrays)
	boxes.Get("/:uid/packing-list", boxHandler.PackingList)
	boxes.Get("/:uid/manifest", boxHandler.Manifest)
	boxes.Post("/", mutador, boxHandler.Create)
	boxes.Post("/:uid/ship", mutador, boxHandler.Ship)
	boxes.Post("/:uid/unship", mutador, boxHandler.UndoShip)
	boxes.Post("/:uid/trays", mutador, boxHandler.CreateTray)
	boxes.Delete("/:uid", mutador, boxHandler.Delete)

	// Bandejas: detalle, lotes anidados
	trays := protected.Group("/trays")
	trayHandler := NewTrayHandler(deps.Core)
	trays.Get("/:uid", trayHandler.GetByID)
	trays.Get("/:uid/lots", trayHandler.ListLots)
	trays.Post("/:uid/lots", mutador, trayHandler.CreateLot)
	trays.Delete("/:uid", mutador, trayHandler.Delete)

	// Lotes
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.Core)
	lots.Get("/:uid", lotHandler.GetByID)
	lots.Put("/:uid", mutador, lotHandler.Update)
	lots.Delete("/:uid", mutador, lotHandler.Delete)

	// Usuarios (el caso de uso exige admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/status", userHandler.SetStatus)
}
