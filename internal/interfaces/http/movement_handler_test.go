package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saep-api/internal/application/auth"
	"github.com/jhoicas/saep-api/internal/application/stock"
	"github.com/jhoicas/saep-api/internal/application/usecase"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	apphttp "github.com/jhoicas/saep-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (r *memClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *memClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *memClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if productID == "" || m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memMovementRepo) SumQuantityByType(productID, movementType string) (int64, error) {
	var sum int64
	for _, m := range r.movements {
		if m.ProductID == productID && m.Type == movementType {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type memUserRepo struct{}

func (r *memUserRepo) Create(u *entity.User) error                    { return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error)        { return nil, nil }
func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }

type memCategoryRepo struct{}

func (r *memCategoryRepo) Create(c *entity.Category) error             { return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) { return nil, nil }
func (r *memCategoryRepo) Update(c *entity.Category) error             { return nil }
func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	return nil, nil
}

type memLogRepo struct{}

func (r *memLogRepo) Create(l *entity.ActivityLog) error                     { return nil }
func (r *memLogRepo) GetByID(id string) (*entity.ActivityLog, error)         { return nil, nil }
func (r *memLogRepo) Update(l *entity.ActivityLog) error                     { return nil }
func (r *memLogRepo) List(limit, offset int) ([]*entity.ActivityLog, error)  { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: app completa sobre repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	movTestProductID   = "11111111-1111-1111-1111-111111111111"
	movTestWarehouseID = "22222222-2222-2222-2222-222222222222"
	movTestClientID    = "33333333-3333-3333-3333-333333333333"
)

type movementFixture struct {
	app       *fiber.App
	movements *memMovementRepo
}

// newMovementFixture levanta la API completa con un producto (mínimo 10),
// un estoque y un cliente precargados.
func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()

	products := &memProductRepo{products: map[string]*entity.Product{
		movTestProductID: {ID: movTestProductID, SKU: "CHA-001", Name: "Chá Verde", MinimumStock: 10},
	}}
	warehouses := &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		movTestWarehouseID: {ID: movTestWarehouseID, Sector: "A1"},
	}}
	clients := &memClientRepo{clients: map[string]*entity.Client{
		movTestClientID: {ID: movTestClientID, Name: "Maria Souza"},
	}}
	movements := &memMovementRepo{}

	ledger := stock.NewLedger(movements, products, warehouses, clients)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(&memUserRepo{}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		ClientUC:     usecase.NewClientUseCase(clients),
		CategoryUC:   usecase.NewCategoryUseCase(&memCategoryRepo{}),
		WarehouseUC:  usecase.NewWarehouseUseCase(warehouses),
		ProductUC:    usecase.NewProductUseCase(products, movements),
		LogUC:        usecase.NewLogUseCase(&memLogRepo{}),
		Ledger:       ledger,
		MovementRepo: movements,
		JWTSecret:    testJWTSecret,
	})
	return &movementFixture{app: app, movements: movements}
}

// do lanza una petición autenticada con body JSON opcional.
func (f *movementFixture) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(t, true))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/movements
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada válida se registra y la respuesta trae el stock resultante.
func TestRecordMovement_EntradaValida_Retorna201(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"quantity":     20,
		"type":         "E",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(20), body["quantity"])
	assert.Equal(t, "E", body["type"])
	assert.Equal(t, float64(20), body["current_stock"])
	assert.Equal(t, float64(10), body["minimum_stock"])
	assert.Equal(t, false, body["below_minimum"], "20 >= mínimo 10")
	assert.NotEmpty(t, body["id"], "el movimiento debe tener ID asignado")
}

// Entrada de 20 y salida de 15 con mínimo 10: la salida deja el stock en 5
// y dispara la alerta de mínimo.
func TestRecordMovement_SalidaBajoMinimo_DisparaAlerta(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"quantity":     20,
		"type":         "E",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"client_id":    movTestClientID,
		"quantity":     15,
		"type":         "S",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(5), body["current_stock"])
	assert.Equal(t, true, body["below_minimum"], "5 < mínimo 10")
}

// Cantidad cero es inválida: 400 con detalle por campo y el libro queda intacto.
func TestRecordMovement_CantidadCero_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"quantity":     0,
		"type":         "E",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok, "la respuesta debe traer el detalle por campo")
	assert.Contains(t, fields, "quantity")
	assert.Empty(t, f.movements.movements, "nada se persiste con entrada inválida")
}

// Tipo distinto de E o S es inválido.
func TestRecordMovement_TipoInvalido_Retorna400(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"quantity":     5,
		"type":         "X",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "type")
	assert.Empty(t, f.movements.movements)
}

// Producto inexistente: 404 y nada persiste.
func TestRecordMovement_ProductoInexistente_Retorna404(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   "99999999-9999-9999-9999-999999999999",
		"warehouse_id": movTestWarehouseID,
		"quantity":     5,
		"type":         "E",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, f.movements.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// El historial no se toca: DELETE y PUT responden 405
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_Delete_Retorna405(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodDelete, "/api/movements/algun-id", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode,
		"los movimientos nunca se borran")
}

func TestMovements_Put_Retorna405(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPut, "/api/movements/algun-id", map[string]interface{}{"quantity": 99})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode,
		"los movimientos nunca se editan")
}

func TestProducts_Delete_Retorna405(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodDelete, "/api/products/"+movTestProductID, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode,
		"los productos referenciados por el historial no se borran")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products/:id/stock
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock_ProductoSinMovimientos_RetornaCero(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodGet, "/api/products/"+movTestProductID+"/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, movTestProductID, body["product_id"])
	assert.Equal(t, float64(0), body["current_stock"], "sin movimientos el stock es 0")
	assert.Equal(t, true, body["below_minimum"], "0 < mínimo 10")
}

func TestGetStock_ReflejaMovimientos(t *testing.T) {
	f := newMovementFixture(t)

	for _, mv := range []struct {
		qty int64
		typ string
	}{{30, "E"}, {7, "S"}, {2, "S"}} {
		resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
			"product_id":   movTestProductID,
			"warehouse_id": movTestWarehouseID,
			"quantity":     mv.qty,
			"type":         mv.typ,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := f.do(t, http.MethodGet, "/api/products/"+movTestProductID+"/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(21), body["current_stock"], "30 - 7 - 2 = 21")
	assert.Equal(t, false, body["below_minimum"])
}

func TestGetStock_ProductoInexistente_Retorna404(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodGet, "/api/products/99999999-9999-9999-9999-999999999999/stock", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/movements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_FiltraPorProducto(t *testing.T) {
	f := newMovementFixture(t)

	resp := f.do(t, http.MethodPost, "/api/movements/", map[string]interface{}{
		"product_id":   movTestProductID,
		"warehouse_id": movTestWarehouseID,
		"quantity":     3,
		"type":         "E",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/movements/?product_id="+movTestProductID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}
