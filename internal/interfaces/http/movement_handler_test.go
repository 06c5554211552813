package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/muebleria-api/internal/application/inventory"
	"github.com/invorya/muebleria-api/internal/domain"
	"github.com/invorya/muebleria-api/internal/domain/entity"
	"github.com/invorya/muebleria-api/internal/domain/repository"
	apphttp "github.com/invorya/muebleria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para ejercer el handler de movimientos end-to-end con app.Test.
// Sin snapshot/rollback: aquí solo se verifica el mapeo de errores a HTTP y el
// camino feliz; la semántica transaccional se prueba en el caso de uso.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	product   *entity.Product
	inv       *entity.Inventory
	movements map[string]*entity.StockMovement
}

type memMovRepo struct{ st *memState }

func (r memMovRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.st.movements[m.ID] = &cp
	return nil
}
func (r memMovRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.st.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r memMovRepo) Update(m *entity.StockMovement) error {
	cp := *m
	r.st.movements[m.ID] = &cp
	return nil
}
func (r memMovRepo) Delete(id string) error {
	delete(r.st.movements, id)
	return nil
}
func (r memMovRepo) DeleteByProduct(string) error { return nil }

type memInvRepo struct{ st *memState }

func (r memInvRepo) Create(*entity.Inventory) error { return nil }
func (r memInvRepo) GetByID(id string) (*entity.Inventory, error) {
	if r.st.inv != nil && r.st.inv.ID == id {
		cp := *r.st.inv
		return &cp, nil
	}
	return nil, nil
}
func (r memInvRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	if r.st.inv != nil && r.st.inv.ProductID == productID {
		cp := *r.st.inv
		return &cp, nil
	}
	return nil, nil
}
func (r memInvRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return r.GetByProduct(productID)
}
func (r memInvRepo) UpdateQuantity(id string, quantity int64) error {
	if r.st.inv == nil || r.st.inv.ID != id {
		return domain.ErrInventoryNotFound
	}
	r.st.inv.Quantity = quantity
	return nil
}
func (r memInvRepo) DeleteByProduct(string) error { return nil }

type memProductRepo struct{ st *memState }

func (r memProductRepo) Create(*entity.Product) error { return nil }
func (r memProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.st.product != nil && r.st.product.ID == id {
		cp := *r.st.product
		return &cp, nil
	}
	return nil, nil
}
func (r memProductRepo) Update(*entity.Product) error { return nil }
func (r memProductRepo) List(int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r memProductRepo) Delete(string) error { return nil }

type memTxRunner struct{ st *memState }

func (t memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(memMovRepo{t.st}, memInvRepo{t.st}, memProductRepo{t.st})
}

// buildMovementApp arma la app con la ruta de creación de movimientos protegida.
func buildMovementApp(st *memState) *fiber.App {
	movUC := inventory.NewMovementUseCase(memTxRunner{st})
	handler := apphttp.NewMovementHandler(movUC, nil)

	app := fiber.New()
	app.Post("/api/stock-movements", apphttp.AuthMiddleware(testJWTSecret), handler.Create)
	return app
}

func seedState(quantity int64) *memState {
	productID := uuid.New().String()
	return &memState{
		product: &entity.Product{ID: productID, Name: "mesa de comedor", StockUnit: "unidad"},
		inv: &entity.Inventory{
			ID:        uuid.New().String(),
			ProductID: productID,
			Quantity:  quantity,
			UpdatedAt: time.Now(),
		},
		movements: map[string]*entity.StockMovement{},
	}
}

func postMovement(t *testing.T, app *fiber.App, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stock-movements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestMovementHandler_Create_Retorna201(t *testing.T) {
	st := seedState(0)
	app := buildMovementApp(st)

	body := `{"product_id":"` + st.product.ID + `","quantity":10,"type":"IN","notes":"compra"}`
	resp := postMovement(t, app, testToken(t), body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(10), st.inv.Quantity)
	assert.Len(t, st.movements, 1)
}

func TestMovementHandler_Create_StockInsuficiente_Retorna400(t *testing.T) {
	st := seedState(2)
	app := buildMovementApp(st)

	body := `{"product_id":"` + st.product.ID + `","quantity":3,"type":"OUT"}`
	resp := postMovement(t, app, testToken(t), body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int64(2), st.inv.Quantity, "la cantidad no debe cambiar en un rechazo")
}

func TestMovementHandler_Create_TipoInvalido_Retorna400(t *testing.T) {
	st := seedState(2)
	app := buildMovementApp(st)

	body := `{"product_id":"` + st.product.ID + `","quantity":1,"type":"TRANSFER"}`
	resp := postMovement(t, app, testToken(t), body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovementHandler_Create_ProductoInexistente_Retorna404(t *testing.T) {
	st := seedState(2)
	app := buildMovementApp(st)

	body := `{"product_id":"` + uuid.New().String() + `","quantity":1,"type":"IN"}`
	resp := postMovement(t, app, testToken(t), body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovementHandler_Create_SinToken_Retorna401(t *testing.T) {
	st := seedState(2)
	app := buildMovementApp(st)

	body := `{"product_id":"` + st.product.ID + `","quantity":1,"type":"IN"}`
	resp := postMovement(t, app, "", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, st.movements)
}
