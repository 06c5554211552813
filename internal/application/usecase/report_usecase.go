package usecase

import (
	"context"
	"time"

	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/domain"
	"github.com/invorya/muebleria-api/internal/domain/repository"
)

// LowStockPDFGenerator genera la representación PDF del reporte de stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, items []dto.LowStockItem, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase consultas de lectura sobre inventario y movimientos:
// listados con joins, detección de stock bajo y valor total del inventario.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  LowStockPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, pdf LowStockPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// ListInventory lista todas las filas de inventario con su producto.
func (uc *ReportUseCase) ListInventory(ctx context.Context) ([]dto.InventoryResponse, error) {
	rows, err := uc.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toInventoryResponse(r))
	}
	return items, nil
}

// GetInventoryByProduct obtiene la fila de inventario de un producto.
func (uc *ReportUseCase) GetInventoryByProduct(ctx context.Context, productID string) (*dto.InventoryResponse, error) {
	row, err := uc.repo.GetInventoryByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrInventoryNotFound
	}
	resp := toInventoryResponse(*row)
	return &resp, nil
}

// ListLowStock devuelve exactamente los productos con quantity <= minimum_stock.
func (uc *ReportUseCase) ListLowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	rows, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LowStockItem{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			StockUnit:    r.StockUnit,
			Quantity:     r.Quantity,
			MinimumStock: r.MinimumStock,
			Price:        r.Price,
		})
	}
	return items, nil
}

// TotalValue calcula Σ(cantidad × precio) sobre todos los productos.
func (uc *ReportUseCase) TotalValue(ctx context.Context) (*dto.TotalValueResponse, error) {
	total, err := uc.repo.TotalInventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalValueResponse{TotalValue: total}, nil
}

// ListMovements lista movimientos más recientes primero, con filtros opcionales
// por producto y rango de fechas, unidos con nombre de producto y username.
func (uc *ReportUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	rows, err := uc.repo.ListMovements(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MovementResponse{
			ID:          r.MovementID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Type:        r.Type,
			Notes:       r.Notes,
			UserID:      r.UserID,
			Username:    r.Username,
			CreatedAt:   r.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// LowStockPDF genera el reporte de stock bajo en PDF.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLowStockPDF(ctx, items, time.Now())
}

func toInventoryResponse(r repository.InventoryRow) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:           r.InventoryID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		StockUnit:    r.StockUnit,
		Quantity:     r.Quantity,
		MinimumStock: r.MinimumStock,
		Price:        r.Price,
		UpdatedAt:    r.UpdatedAt,
	}
}
