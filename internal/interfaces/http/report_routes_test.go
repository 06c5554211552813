package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/application/usecase"
	"github.com/invorya/muebleria-api/internal/domain/repository"
	apphttp "github.com/invorya/muebleria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de solo lectura para las rutas de consulta. Registra el último filtro
// recibido para verificar que los query params llegan parseados al repositorio.
// ──────────────────────────────────────────────────────────────────────────────

type queryRepo struct {
	lowStock   []repository.LowStockRow
	total      decimal.Decimal
	lastFilter *repository.MovementFilter
}

func (r *queryRepo) ListInventory(context.Context) ([]repository.InventoryRow, error) {
	return nil, nil
}

func (r *queryRepo) GetInventoryByProduct(context.Context, string) (*repository.InventoryRow, error) {
	return nil, nil
}

func (r *queryRepo) ListLowStock(context.Context) ([]repository.LowStockRow, error) {
	return r.lowStock, nil
}

func (r *queryRepo) TotalInventoryValue(context.Context) (decimal.Decimal, error) {
	return r.total, nil
}

func (r *queryRepo) ListMovements(_ context.Context, filter repository.MovementFilter) ([]repository.MovementRow, error) {
	r.lastFilter = &filter
	return nil, nil
}

// buildQueryApp arma la app con las rutas de consulta protegidas.
func buildQueryApp(repo *queryRepo) *fiber.App {
	reportUC := usecase.NewReportUseCase(repo, nil)

	app := fiber.New()
	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))

	productHandler := apphttp.NewProductHandler(nil, reportUC, nil)
	protected.Get("/products/low-stock", productHandler.LowStock)

	inventoryHandler := apphttp.NewInventoryHandler(reportUC, nil)
	protected.Get("/inventory/total-value", inventoryHandler.TotalValue)

	movementHandler := apphttp.NewMovementHandler(nil, reportUC)
	protected.Get("/stock-movements", movementHandler.List)
	protected.Get("/stock-movements/product/:productId", movementHandler.ListByProduct)

	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", testToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products/low-stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockRoute_RetornaListado(t *testing.T) {
	repo := &queryRepo{
		lowStock: []repository.LowStockRow{
			{ProductID: "prod-silla", ProductName: "silla rústica", CategoryName: "comedor",
				StockUnit: "unidad", Quantity: 2, MinimumStock: 5, Price: decimal.RequireFromString("120000.50")},
		},
	}
	app := buildQueryApp(repo)

	resp := getJSON(t, app, "/api/products/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.LowStockItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "prod-silla", items[0].ProductID)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(5), items[0].MinimumStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/inventory/total-value
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalValueRoute_RetornaSuma(t *testing.T) {
	repo := &queryRepo{total: decimal.RequireFromString("19290001.00")}
	app := buildQueryApp(repo)

	resp := getJSON(t, app, "/api/inventory/total-value")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TotalValueResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("19290001.00")),
		"valor total esperado 19290001.00, obtenido %s", out.TotalValue)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/stock-movements — parseo de filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementListRoute_ParseaFiltros(t *testing.T) {
	repo := &queryRepo{}
	app := buildQueryApp(repo)

	resp := getJSON(t, app, "/api/stock-movements?product_id=prod-silla&from=2026-08-01T00:00:00Z&to=2026-08-15T00:00:00Z&limit=5&offset=10")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, "prod-silla", repo.lastFilter.ProductID)
	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), repo.lastFilter.From.UTC())
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), repo.lastFilter.To.UTC())
	assert.Equal(t, 5, repo.lastFilter.Limit)
	assert.Equal(t, 10, repo.lastFilter.Offset)
}

func TestMovementListRoute_FechaInvalida_Retorna400(t *testing.T) {
	repo := &queryRepo{}
	app := buildQueryApp(repo)

	resp := getJSON(t, app, "/api/stock-movements?from=01-08-2026")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
	assert.Nil(t, repo.lastFilter, "una fecha inválida no debe llegar al repositorio")
}

func TestMovementByProductRoute_FijaProductoDelPath(t *testing.T) {
	repo := &queryRepo{}
	app := buildQueryApp(repo)

	resp := getJSON(t, app, "/api/stock-movements/product/prod-mesa")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, "prod-mesa", repo.lastFilter.ProductID)
	assert.Equal(t, 20, repo.lastFilter.Limit, "limit por defecto")
}
