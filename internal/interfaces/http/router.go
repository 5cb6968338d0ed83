package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/unitflow-api/internal/application/auth"
	"github.com/jhoicas/unitflow-api/internal/application/employees"
	"github.com/jhoicas/unitflow-api/internal/application/movements"
	"github.com/jhoicas/unitflow-api/internal/application/stats"
	"github.com/jhoicas/unitflow-api/internal/application/units"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UnitUC     *units.UseCase
	MovementUC *movements.UseCase
	StatsUC    *stats.UseCase
	EmployeeUC *employees.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Units (protegido)
	unitHandler := NewUnitHandler(deps.UnitUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	unitsGroup := protected.Group("/units")
	unitsGroup.Get("/", unitHandler.List)
	unitsGroup.Post("/", unitHandler.Register)
	unitsGroup.Get("/:id", unitHandler.Get)
	unitsGroup.Put("/:id", unitHandler.UpdateType)
	unitsGroup.Delete("/:id", unitHandler.Deregister)
	unitsGroup.Put("/:id/move", movementHandler.Move)

	// Movements (protegido)
	movementsGroup := protected.Group("/movements")
	movementsGroup.Get("/", movementHandler.List)
	movementsGroup.Get("/export", movementHandler.Export)

	// Stats (protegido)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Summary)
	protected.Get("/stats/comprehensive", statsHandler.Comprehensive)

	// Employees (protegido)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employeesGroup := protected.Group("/employees")
	employeesGroup.Get("/", employeeHandler.List)
	employeesGroup.Post("/", employeeHandler.Create)
	employeesGroup.Put("/:id", employeeHandler.Update)
	employeesGroup.Delete("/:id", employeeHandler.Delete)
}
