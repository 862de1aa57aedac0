package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saep-api/internal/application/stock"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	items []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.items {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) SumQuantityByType(productID, movementType string) (int64, error) {
	var total int64
	for _, m := range f.items {
		if m.ProductID == productID && m.Type == movementType {
			total += m.Quantity
		}
	}
	return total, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error          { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID   = "11111111-1111-1111-1111-111111111111"
	testWarehouseID = "22222222-2222-2222-2222-222222222222"
	testClientID    = "33333333-3333-3333-3333-333333333333"
)

type ledgerFixture struct {
	ledger    *stock.Ledger
	movements *fakeMovementRepo
	products  *fakeProductRepo
}

// newFixture arma un ledger con un producto y una bodega ya registrados.
func newFixture(t *testing.T, minimumStock int64) *ledgerFixture {
	t.Helper()
	movements := &fakeMovementRepo{}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, SKU: "SKU-001", Name: "Arroz 1kg", MinimumStock: minimumStock},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, Sector: "A1"},
	}}
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		testClientID: {ID: testClientID, Name: "Cliente Uno"},
	}}
	return &ledgerFixture{
		ledger:    stock.NewLedger(movements, products, warehouses, clients),
		movements: movements,
		products:  products,
	}
}

func (fx *ledgerFixture) record(t *testing.T, movType string, qty int64) *entity.StockStatus {
	t.Helper()
	_, status, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    qty,
		Type:        movType,
	})
	require.NoError(t, err)
	require.NotNil(t, status)
	return status
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStock
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStock_SinMovimientosDevuelveCero(t *testing.T) {
	fx := newFixture(t, 0)

	status, err := fx.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), status.CurrentQuantity, "sin movimientos el stock debe ser 0, no error")
	assert.False(t, status.BelowMinimum)
}

func TestComputeStock_ProductoInexistente(t *testing.T) {
	fx := newFixture(t, 0)

	_, err := fx.ledger.ComputeStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComputeStock_EntradasMenosSalidas(t *testing.T) {
	fx := newFixture(t, 0)
	fx.record(t, entity.MovementTypeInbound, 10)
	fx.record(t, entity.MovementTypeInbound, 5)
	fx.record(t, entity.MovementTypeOutbound, 3)

	status, err := fx.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), status.CurrentQuantity)
}

// El resultado es independiente del orden de inserción (agregación conmutativa).
func TestComputeStock_IndependienteDelOrden(t *testing.T) {
	ordered := newFixture(t, 0)
	ordered.record(t, entity.MovementTypeInbound, 7)
	ordered.record(t, entity.MovementTypeInbound, 2)
	ordered.record(t, entity.MovementTypeOutbound, 4)

	shuffled := newFixture(t, 0)
	shuffled.record(t, entity.MovementTypeOutbound, 4)
	shuffled.record(t, entity.MovementTypeInbound, 2)
	shuffled.record(t, entity.MovementTypeInbound, 7)

	a, err := ordered.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	b, err := shuffled.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, a.CurrentQuantity, b.CurrentQuantity)
}

// Las salidas pueden superar a las entradas: el stock negativo es un estado
// observable, no un error.
func TestComputeStock_PuedeSerNegativo(t *testing.T) {
	fx := newFixture(t, 0)
	fx.record(t, entity.MovementTypeInbound, 3)
	fx.record(t, entity.MovementTypeOutbound, 8)

	status, err := fx.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), status.CurrentQuantity)
}

func TestComputeStock_EntradaYSalidaIgualesDanCero(t *testing.T) {
	fx := newFixture(t, 0)
	fx.record(t, entity.MovementTypeInbound, 7)
	fx.record(t, entity.MovementTypeOutbound, 7)

	status, err := fx.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.CurrentQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement — validación (validar-luego-persistir)
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_CantidadCeroRechazada(t *testing.T) {
	fx := newFixture(t, 0)

	_, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    0,
		Type:        entity.MovementTypeInbound,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)
	assert.Empty(t, fx.movements.items, "con validación fallida el libro queda intacto")
}

func TestRecordMovement_CantidadNegativaRechazada(t *testing.T) {
	fx := newFixture(t, 0)

	_, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    -5,
		Type:        entity.MovementTypeOutbound,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fx.movements.items)
}

func TestRecordMovement_TipoDesconocidoRechazado(t *testing.T) {
	fx := newFixture(t, 0)

	_, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    5,
		Type:        "X",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
	assert.Empty(t, fx.movements.items)
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	fx := newFixture(t, 0)

	_, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   "no-existe",
		WarehouseID: testWarehouseID,
		Quantity:    5,
		Type:        entity.MovementTypeInbound,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.movements.items)
}

func TestRecordMovement_BodegaInexistente(t *testing.T) {
	fx := newFixture(t, 0)

	_, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: "no-existe",
		Quantity:    5,
		Type:        entity.MovementTypeInbound,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.movements.items)
}

func TestRecordMovement_ClienteOpcional(t *testing.T) {
	fx := newFixture(t, 0)

	// Sin cliente: válido
	mov, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    2,
		Type:        entity.MovementTypeOutbound,
	})
	require.NoError(t, err)
	assert.Empty(t, mov.ClientID)

	// Con cliente existente: válido
	mov, _, err = fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		ClientID:    testClientID,
		Quantity:    2,
		Type:        entity.MovementTypeOutbound,
	})
	require.NoError(t, err)
	assert.Equal(t, testClientID, mov.ClientID)

	// Con cliente inexistente: rechazado sin persistir
	before := len(fx.movements.items)
	_, _, err = fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		ClientID:    "no-existe",
		Quantity:    2,
		Type:        entity.MovementTypeOutbound,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, fx.movements.items, before)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement — estado resultante
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: mínimo 10, entrada 20 -> 20 sin alerta; salida 15 -> 5 con alerta.
func TestRecordMovement_EscenarioMinimo(t *testing.T) {
	fx := newFixture(t, 10)

	status := fx.record(t, entity.MovementTypeInbound, 20)
	assert.Equal(t, int64(20), status.CurrentQuantity)
	assert.Equal(t, int64(10), status.MinimumStock)
	assert.False(t, status.BelowMinimum)

	status = fx.record(t, entity.MovementTypeOutbound, 15)
	assert.Equal(t, int64(5), status.CurrentQuantity)
	assert.True(t, status.BelowMinimum)
}

// Frontera: cantidad igual al mínimo no dispara la alerta.
func TestRecordMovement_IgualAlMinimoNoEsAlerta(t *testing.T) {
	fx := newFixture(t, 10)

	status := fx.record(t, entity.MovementTypeInbound, 10)
	assert.Equal(t, int64(10), status.CurrentQuantity)
	assert.False(t, status.BelowMinimum, "cantidad == mínimo no debe marcar below_minimum")

	status = fx.record(t, entity.MovementTypeOutbound, 1)
	assert.True(t, status.BelowMinimum)
}

// Cada movimiento registrado se refleja exactamente una vez.
func TestRecordMovement_SeReflejaExactamenteUnaVez(t *testing.T) {
	fx := newFixture(t, 0)

	fx.record(t, entity.MovementTypeInbound, 4)
	require.Len(t, fx.movements.items, 1)

	status, err := fx.ledger.ComputeStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), status.CurrentQuantity)
}

func TestRecordMovement_TimestampDelServidorPorDefecto(t *testing.T) {
	fx := newFixture(t, 0)

	before := time.Now()
	mov, _, err := fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    1,
		Type:        entity.MovementTypeInbound,
	})
	require.NoError(t, err)
	assert.False(t, mov.MovedAt.Before(before), "sin moved_at el servidor asigna la hora actual")

	supplied := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mov, _, err = fx.ledger.RecordMovement(context.Background(), stock.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    1,
		Type:        entity.MovementTypeInbound,
		MovedAt:     &supplied,
	})
	require.NoError(t, err)
	assert.True(t, supplied.Equal(mov.MovedAt), "moved_at suministrado se conserva")
}
