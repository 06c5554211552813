package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/application/inventory"
	"github.com/invorya/muebleria-api/internal/domain"
	"github.com/invorya/muebleria-api/internal/domain/entity"
	"github.com/invorya/muebleria-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. El alta crea la fila de inventario
// (cantidad 0) en la misma transacción; la baja cascada corre en el reconciliador.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto junto con su fila de inventario en cantidad 0.
// Ambas inserciones son atómicas: un producto nunca queda sin inventario.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.StockUnit == "" || in.MinimumStock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || *in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		StockUnit:    in.StockUnit,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Price:        in.Price,
		MinimumStock: *in.MinimumStock,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.Create(&entity.Inventory{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  0,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. La cantidad en stock no se toca aquí: solo vía movimientos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.StockUnit != nil {
		product.StockUnit = *in.StockUnit
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumStock = *in.MinimumStock
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		StockUnit:    p.StockUnit,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Price:        p.Price,
		MinimumStock: p.MinimumStock,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
