package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias que el router necesita para montar todos los handlers.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProfileUC      *usecase.ProfileUseCase
	RecordMovement *inventory.RecordMovementUseCase
	Ledger         *inventory.LedgerUseCase
	DashboardUC    *analytics.DashboardUseCase
	JWTSecret      string
}

// Router monta todas las rutas de la API bajo /api.
//
// /api/auth/* es público; el resto exige Bearer token. RequireRole("admin")
// es el primer filtro de las rutas solo-admin; los casos de uso re-verifican
// con el perfil fresco (un admin desactivado falla aunque su token siga vivo).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.Ledger)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	api := app.Group("/api")

	// Público
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protegido
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/transactions", inventoryHandler.ListByProduct)

	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	transactions := protected.Group("/transactions")
	transactions.Post("/", inventoryHandler.RecordMovement)
	transactions.Get("/", inventoryHandler.List)

	users := protected.Group("/users")
	users.Get("/me", profileHandler.Me)
	users.Get("/", profileHandler.List)
	users.Get("/:id", profileHandler.GetByID)
	users.Put("/:id", profileHandler.Update)

	protected.Get("/dashboard", dashboardHandler.Summary)
}
