// seed aplica el esquema y carga datos iniciales: un usuario administrador,
// categorías, estoques, clientes y un par de productos con movimientos de
// ejemplo. Es idempotente: si el administrador ya existe no vuelve a sembrar.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca db/schema.sql en el directorio actual.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/saep-api/internal/application/stock"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/infrastructure/postgres"
	"github.com/jhoicas/saep-api/pkg/config"
	"github.com/jhoicas/saep-api/pkg/logger"
)

const (
	adminEmail    = "admin@saep.local"
	adminPassword = "admin123" // cambiar tras el primer login
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	schemaPath := "db/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ddl, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(ddl)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("path", schemaPath).Msg("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)

	existing, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar administrador")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("datos ya sembrados, nada que hacer")
		return
	}

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		Name:         "Administrador",
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("email", adminEmail).Msg("administrador creado")

	for _, name := range []string{"Bebidas", "Limpeza", "Alimentos"} {
		c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("crear categoría")
		}
	}

	warehouse := &entity.Warehouse{
		ID:          uuid.New().String(),
		Sector:      "A1",
		Description: "Estoque principal",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := warehouseRepo.Create(warehouse); err != nil {
		log.Fatal().Err(err).Msg("crear estoque")
	}

	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		Phone:     "+55 11 99999-0001",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := clientRepo.Create(client); err != nil {
		log.Fatal().Err(err).Msg("crear cliente")
	}

	products := []*entity.Product{
		{
			ID:           uuid.New().String(),
			UserID:       admin.ID,
			SKU:          "CHA-001",
			Name:         "Chá Verde",
			Description:  "Caixa com 20 sachês",
			MinimumStock: 10,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			UserID:       admin.ID,
			SKU:          "SAB-001",
			Name:         "Sabão em pó",
			Description:  "Pacote 1kg",
			MinimumStock: 5,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("crear producto")
		}
	}

	// Movimientos de ejemplo a través del libro, como haría la API.
	ledger := stock.NewLedger(movementRepo, productRepo, warehouseRepo, clientRepo)
	seedMovements := []stock.MovementInput{
		{ProductID: products[0].ID, WarehouseID: warehouse.ID, Quantity: 30, Type: entity.MovementTypeInbound},
		{ProductID: products[0].ID, WarehouseID: warehouse.ID, ClientID: client.ID, Quantity: 5, Type: entity.MovementTypeOutbound},
		{ProductID: products[1].ID, WarehouseID: warehouse.ID, Quantity: 12, Type: entity.MovementTypeInbound},
	}
	for _, in := range seedMovements {
		if _, _, err := ledger.RecordMovement(ctx, in); err != nil {
			log.Fatal().Err(err).Str("product_id", in.ProductID).Msg("registrar movimiento")
		}
	}

	log.Info().
		Int("products", len(products)).
		Int("movements", len(seedMovements)).
		Msg("datos iniciales sembrados")
}
