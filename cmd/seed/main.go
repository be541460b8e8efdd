// seed puebla la base con datos de arranque: un admin, categorías y un
// catálogo de demostración con su saldo inicial en el libro de movimientos.
//
// Uso: go run ./cmd/seed
// Config por env vars (las mismas de la API): DATABASE_URL o DB_*, SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD.
// Idempotente: si el email del admin ya existe no inserta nada.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@almacen.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "admin123")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	movementUC := inventory.NewRecordMovementUseCase(txRunner, profileRepo)

	existing, err := profileRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("admin ya existe, seed omitido")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := profileRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", admin.Email).Msg("admin creado")

	categories := []*entity.Category{
		{ID: uuid.New().String(), Name: "Bebidas", Description: "Gaseosas, jugos y agua", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Aseo", Description: "Productos de limpieza", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Abarrotes", Description: "Granos y enlatados", CreatedAt: now, UpdatedAt: now},
	}
	for _, cat := range categories {
		if err := categoryRepo.Create(ctx, cat); err != nil {
			log.Fatal().Err(err).Str("categoria", cat.Name).Msg("crear categoría")
		}
	}
	log.Info().Int("categorias", len(categories)).Msg("categorías creadas")

	type seedProduct struct {
		name, sku   string
		categoryIdx int
		price       string
		quantity    int
	}
	demo := []seedProduct{
		{"Gaseosa Cola 1.5L", "BEB-001", 0, "4500.00", 24},
		{"Agua sin gas 600ml", "BEB-002", 0, "1800.00", 48},
		{"Jabón líquido 1L", "ASE-001", 1, "9800.00", 3},
		{"Arroz 500g", "ABA-001", 2, "2700.00", 60},
		{"Lentejas 500g", "ABA-002", 2, "3200.00", 0},
	}

	created := 0
	for _, sp := range demo {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("precio inválido")
		}
		catID := categories[sp.categoryIdx].ID
		p := &entity.Product{
			ID:         uuid.New().String(),
			Name:       sp.name,
			SKU:        sp.sku,
			CategoryID: &catID,
			Price:      price,
			Quantity:   sp.quantity,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		// Alta + saldo inicial en la misma transacción, igual que la API.
		err = txRunner.Run(ctx, func(productRepo repository.ProductRepository, txRepo repository.StockTransactionRepository) error {
			if err := productRepo.Create(ctx, p); err != nil {
				return err
			}
			if sp.quantity > 0 {
				return movementUC.RecordOpeningInTx(ctx, txRepo, p.ID, admin.ID, sp.quantity, now)
			}
			return nil
		})
		if err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("crear producto")
		}
		created++
	}

	log.Info().Int("productos", created).Msg("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
