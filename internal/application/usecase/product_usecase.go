package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// ProductUsecase gestiona el catálogo de productos.
type ProductUsecase struct {
	products repository.ProductRepository
	tx       TxRunner
	log      *logger.Logger
}

func NewProductUsecase(products repository.ProductRepository, tx TxRunner, log *logger.Logger) *ProductUsecase {
	return &ProductUsecase{products: products, tx: tx, log: log}
}

// catalogImages imágenes estáticas del catálogo por nombre de producto.
var catalogImages = map[string]string{
	"apple":  "https://placehold.co/400x400/81c784/ffffff?text=Apple",
	"banana": "https://placehold.co/400x400/fff176/ffffff?text=Banana",
	"orange": "https://placehold.co/400x400/ffb74d/ffffff?text=Orange",
	"milk":   "https://placehold.co/400x400/b0e0e6/ffffff?text=Milk",
	"bread":  "https://placehold.co/400x400/d7ccc8/ffffff?text=Bread",
	"eggs":   "https://placehold.co/400x400/fff9c4/ffffff?text=Eggs",
	"rice":   "https://placehold.co/400x400/f0f8ff/ffffff?text=Rice",
	"sugar":  "https://placehold.co/400x400/e6e6e6/ffffff?text=Sugar",
}

const defaultCatalogImage = "https://placehold.co/400x400/cccccc/ffffff?text=Product"

func catalogImage(name string) string {
	if url, ok := catalogImages[strings.ToLower(name)]; ok {
		return url
	}
	return defaultCatalogImage
}

// List devuelve el catálogo completo en la forma que consume el frontend.
func (uc *ProductUsecase) List(ctx context.Context) ([]dto.CatalogProduct, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogProduct, 0, len(products))
	for _, p := range products {
		item := dto.NewCatalogProduct(p)
		item.ImageURL = catalogImage(p.Name)
		out = append(out, item)
	}
	return out, nil
}

// Get devuelve un producto por id.
func (uc *ProductUsecase) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewProductResponse(p)
	return &resp, nil
}

// Create da de alta un producto con su stock inicial.
func (uc *ProductUsecase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.IsValidUnitType(req.UnitType) {
		return nil, fmt.Errorf("%w: unit_type %q", domain.ErrInvalidInput, req.UnitType)
	}
	p := &entity.Product{
		Name:          req.Name,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		UnitType:      req.UnitType,
		Stock:         req.Stock,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Int("product_id", p.ID).Str("name", p.Name).Msg("producto creado")
	resp := dto.NewProductResponse(p)
	return &resp, nil
}

// Update aplica una actualización parcial sobre un producto.
func (uc *ProductUsecase) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.UnitType != nil {
		if !entity.IsValidUnitType(*req.UnitType) {
			return nil, fmt.Errorf("%w: unit_type %q", domain.ErrInvalidInput, *req.UnitType)
		}
		p.UnitType = *req.UnitType
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(p)
	return &resp, nil
}

// Delete borra un producto junto con todo su historial de ventas y compras,
// en una sola transacción, y reporta cuántas transacciones se eliminaron.
func (uc *ProductUsecase) Delete(ctx context.Context, id int) (*dto.DeleteProductResponse, error) {
	var resp dto.DeleteProductResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		p, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		salesDeleted, err := r.Sales.DeleteByProduct(ctx, id)
		if err != nil {
			return err
		}
		purchasesDeleted, err := r.Purchases.DeleteByProduct(ctx, id)
		if err != nil {
			return err
		}
		if err := r.Products.Delete(ctx, id); err != nil {
			return err
		}

		resp = dto.DeleteProductResponse{
			Status: "success",
			Message: fmt.Sprintf("Producto '%s' eliminado junto con %d ventas y %d compras",
				p.Name, salesDeleted, purchasesDeleted),
			ProductID:        id,
			SalesDeleted:     salesDeleted,
			PurchasesDeleted: purchasesDeleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("product_id", id).
		Int("sales_deleted", resp.SalesDeleted).
		Int("purchases_deleted", resp.PurchasesDeleted).
		Msg("producto eliminado en cascada")
	return &resp, nil
}
