package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/application/usecase"
	"github.com/invorya/muebleria-api/internal/domain"
	"github.com/invorya/muebleria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de reportes: guarda filas semilla y reproduce en memoria
// la semántica de las consultas (filtro de stock bajo, suma del valor total,
// filtros de movimientos), para verificar el cableado y el mapeo de DTOs.
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	inventory []reportProduct
	movements []repository.MovementRow
}

// reportProduct fila de inventario con los campos que cruzan las consultas.
type reportProduct struct {
	row repository.InventoryRow
	// CategoryName solo aparece en el listado de stock bajo
	categoryName string
}

func (r *fakeReportRepo) ListInventory(context.Context) ([]repository.InventoryRow, error) {
	out := make([]repository.InventoryRow, 0, len(r.inventory))
	for _, p := range r.inventory {
		out = append(out, p.row)
	}
	return out, nil
}

func (r *fakeReportRepo) GetInventoryByProduct(_ context.Context, productID string) (*repository.InventoryRow, error) {
	for _, p := range r.inventory {
		if p.row.ProductID == productID {
			row := p.row
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) ListLowStock(context.Context) ([]repository.LowStockRow, error) {
	var out []repository.LowStockRow
	for _, p := range r.inventory {
		if p.row.Quantity <= p.row.MinimumStock {
			out = append(out, repository.LowStockRow{
				ProductID:    p.row.ProductID,
				ProductName:  p.row.ProductName,
				CategoryName: p.categoryName,
				StockUnit:    p.row.StockUnit,
				Quantity:     p.row.Quantity,
				MinimumStock: p.row.MinimumStock,
				Price:        p.row.Price,
			})
		}
	}
	return out, nil
}

func (r *fakeReportRepo) TotalInventoryValue(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.inventory {
		total = total.Add(p.row.Price.Mul(decimal.NewFromInt(p.row.Quantity)))
	}
	return total, nil
}

func (r *fakeReportRepo) ListMovements(_ context.Context, filter repository.MovementFilter) ([]repository.MovementRow, error) {
	var out []repository.MovementRow
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// fakePDFGen registra los items recibidos y devuelve bytes fijos.
type fakePDFGen struct {
	gotItems []dto.LowStockItem
}

func (g *fakePDFGen) GenerateLowStockPDF(_ context.Context, items []dto.LowStockItem, _ time.Time) ([]byte, error) {
	g.gotItems = items
	return []byte("%PDF-fake"), nil
}

func seedInventory() *fakeReportRepo {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return &fakeReportRepo{
		inventory: []reportProduct{
			// bajo mínimo (2 < 5)
			{row: repository.InventoryRow{InventoryID: "inv-1", ProductID: "prod-silla", ProductName: "silla rústica",
				StockUnit: "unidad", Quantity: 2, MinimumStock: 5, Price: price("120000.50")}, categoryName: "comedor"},
			// exactamente en el mínimo (3 == 3): también es stock bajo
			{row: repository.InventoryRow{InventoryID: "inv-2", ProductID: "prod-mesa", ProductName: "mesa de centro",
				StockUnit: "unidad", Quantity: 3, MinimumStock: 3, Price: price("350000")}, categoryName: "sala"},
			// sobre el mínimo (10 > 4): no debe aparecer
			{row: repository.InventoryRow{InventoryID: "inv-3", ProductID: "prod-sofa", ProductName: "sofá tres puestos",
				StockUnit: "unidad", Quantity: 10, MinimumStock: 4, Price: price("1800000")}},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests valor total: Σ(cantidad × precio)
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalValue_SumaCantidadPorPrecio(t *testing.T) {
	uc := usecase.NewReportUseCase(seedInventory(), &fakePDFGen{})

	out, err := uc.TotalValue(context.Background())
	require.NoError(t, err)

	// 2×120000.50 + 3×350000 + 10×1800000 = 240001.00 + 1050000 + 18000000
	expected := decimal.RequireFromString("19290001.00")
	assert.True(t, out.TotalValue.Equal(expected),
		"valor total esperado %s, obtenido %s", expected, out.TotalValue)
}

func TestTotalValue_InventarioVacio_RetornaCero(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, &fakePDFGen{})

	out, err := uc.TotalValue(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalValue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests stock bajo: exactamente {p : cantidad <= stock mínimo}
// ──────────────────────────────────────────────────────────────────────────────

func TestListLowStock_ExactamenteBajoOEnMinimo(t *testing.T) {
	uc := usecase.NewReportUseCase(seedInventory(), &fakePDFGen{})

	items, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)

	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.ProductID)
	}
	// El producto en el mínimo exacto cuenta como stock bajo; el que está
	// por encima no aparece.
	assert.ElementsMatch(t, []string{"prod-silla", "prod-mesa"}, got)

	for _, it := range items {
		assert.LessOrEqual(t, it.Quantity, it.MinimumStock)
	}
}

func TestListLowStock_MapeaCamposDeLaVista(t *testing.T) {
	uc := usecase.NewReportUseCase(seedInventory(), &fakePDFGen{})

	items, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)

	first := items[0]
	assert.Equal(t, "silla rústica", first.ProductName)
	assert.Equal(t, "comedor", first.CategoryName)
	assert.Equal(t, "unidad", first.StockUnit)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("120000.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests inventario por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInventoryByProduct(t *testing.T) {
	uc := usecase.NewReportUseCase(seedInventory(), &fakePDFGen{})

	out, err := uc.GetInventoryByProduct(context.Background(), "prod-mesa")
	require.NoError(t, err)
	assert.Equal(t, "inv-2", out.ID)
	assert.Equal(t, int64(3), out.Quantity)

	_, err = uc.GetInventoryByProduct(context.Background(), "prod-inexistente")
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestListInventory_MapeaTodasLasFilas(t *testing.T) {
	uc := usecase.NewReportUseCase(seedInventory(), &fakePDFGen{})

	items, err := uc.ListInventory(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests historial de movimientos con filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_FiltraPorProductoYFechas(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := seedInventory()
	repo.movements = []repository.MovementRow{
		{MovementID: "m1", ProductID: "prod-silla", Type: "IN", Quantity: 5, Username: "remedios", CreatedAt: base},
		{MovementID: "m2", ProductID: "prod-silla", Type: "OUT", Quantity: 2, Username: "remedios", CreatedAt: base.AddDate(0, 0, 3)},
		{MovementID: "m3", ProductID: "prod-mesa", Type: "IN", Quantity: 1, Username: "aureliano", CreatedAt: base.AddDate(0, 0, 5)},
	}
	uc := usecase.NewReportUseCase(repo, &fakePDFGen{})

	// Solo el producto silla
	out, err := uc.ListMovements(context.Background(), repository.MovementFilter{ProductID: "prod-silla", Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "remedios", out.Items[0].Username)

	// Rango de fechas que deja solo m2 y m3
	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 6)
	out, err = uc.ListMovements(context.Background(), repository.MovementFilter{From: &from, To: &to, Limit: 20})
	require.NoError(t, err)
	got := make([]string, 0, len(out.Items))
	for _, it := range out.Items {
		got = append(got, it.ID)
	}
	assert.ElementsMatch(t, []string{"m2", "m3"}, got)

	// Los metadatos de página reflejan el filtro
	assert.Equal(t, 20, out.Page.Limit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests reporte PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockPDF_PasaItemsAlGenerador(t *testing.T) {
	gen := &fakePDFGen{}
	uc := usecase.NewReportUseCase(seedInventory(), gen)

	pdfBytes, err := uc.LowStockPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Len(t, gen.gotItems, 2, "el generador debe recibir exactamente los productos con stock bajo")
}
