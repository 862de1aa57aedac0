package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

// Ledger es el núcleo del sistema: calcula el stock actual de un producto
// agregando su historial de movimientos y registra movimientos nuevos.
// El stock nunca se guarda como contador mutable; la suma de entradas menos
// la suma de salidas sobre el libro append-only es la única fuente de verdad,
// así un contador cacheado jamás puede divergir del historial.
type Ledger struct {
	movementRepo  repository.StockMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	clientRepo    repository.ClientRepository
}

// NewLedger construye el libro de stock.
func NewLedger(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	clientRepo repository.ClientRepository,
) *Ledger {
	return &Ledger{
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		clientRepo:    clientRepo,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// ClientID es opcional (vacío = sin cliente). MovedAt nil = hora del servidor.
type MovementInput struct {
	ProductID   string
	WarehouseID string
	ClientID    string
	Quantity    int64
	Type        string // E o S
	MovedAt     *time.Time
}

// ComputeStock calcula el stock actual de un producto: suma de entradas menos
// suma de salidas. Un producto sin movimientos da 0, no error. El resultado
// puede ser negativo: es un estado observable que señala un problema de
// captura aguas arriba, no algo que esta capa rechace. Lectura pura.
func (l *Ledger) ComputeStock(ctx context.Context, productID string) (*entity.StockStatus, error) {
	product, err := l.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return l.statusFor(product)
}

// RecordMovement valida y persiste un movimiento, luego recalcula el stock
// del producto. Validar-luego-persistir: con entrada inválida o referencia
// inexistente no se escribe nada y el libro queda intacto.
func (l *Ledger) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, *entity.StockStatus, error) {
	if input.Quantity <= 0 {
		return nil, nil, domain.NewValidationError("quantity", "debe ser un entero positivo")
	}
	if !entity.ValidMovementType(input.Type) {
		return nil, nil, domain.NewValidationError("type", "debe ser E (entrada) o S (salida)")
	}

	product, err := l.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	warehouse, err := l.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, nil, err
	}
	if warehouse == nil {
		return nil, nil, domain.ErrNotFound
	}
	if input.ClientID != "" {
		client, err := l.clientRepo.GetByID(input.ClientID)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, domain.ErrNotFound
		}
	}

	movedAt := time.Now()
	if input.MovedAt != nil {
		movedAt = *input.MovedAt
	}
	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		WarehouseID: input.WarehouseID,
		ClientID:    input.ClientID,
		Quantity:    input.Quantity,
		Type:        input.Type,
		MovedAt:     movedAt,
	}
	if err := l.movementRepo.Create(movement); err != nil {
		return nil, nil, err
	}

	status, err := l.statusFor(product)
	if err != nil {
		return nil, nil, err
	}
	return movement, status, nil
}

// statusFor agrega el libro del producto y arma el estado derivado.
// BelowMinimum es estricto: cantidad igual al mínimo no dispara la alerta.
func (l *Ledger) statusFor(product *entity.Product) (*entity.StockStatus, error) {
	inbound, err := l.movementRepo.SumQuantityByType(product.ID, entity.MovementTypeInbound)
	if err != nil {
		return nil, err
	}
	outbound, err := l.movementRepo.SumQuantityByType(product.ID, entity.MovementTypeOutbound)
	if err != nil {
		return nil, err
	}
	current := inbound - outbound
	return &entity.StockStatus{
		ProductID:       product.ID,
		CurrentQuantity: current,
		MinimumStock:    product.MinimumStock,
		BelowMinimum:    current < product.MinimumStock,
	}, nil
}
