package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/internal/domain/stock"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Umbral fijo de stock bajo para el tablero de resumen.
const lowStockThreshold = 10

// LedgerUsecase arma los libros y reportes derivados: ventas, compras, stock
// reconstruido, apertura y estado de resultados. Solo lee; nunca muta stock.
type LedgerUsecase struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	log       *logger.Logger
}

func NewLedgerUsecase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	purchases repository.PurchaseRepository,
	log *logger.Logger,
) *LedgerUsecase {
	return &LedgerUsecase{products: products, sales: sales, purchases: purchases, log: log}
}

// parseFilter convierte los query params de rango en un TxFilter.
func parseFilter(dateFrom, dateTo string, productID *int) (repository.TxFilter, error) {
	var f repository.TxFilter
	f.ProductID = productID
	if dateFrom != "" {
		t, err := stock.ParseRangeStart(dateFrom)
		if err != nil {
			return f, fmt.Errorf("%w: date_from: %v", domain.ErrInvalidInput, err)
		}
		f.From = &t
	}
	if dateTo != "" {
		t, err := stock.ParseRangeEnd(dateTo)
		if err != nil {
			return f, fmt.Errorf("%w: date_to: %v", domain.ErrInvalidInput, err)
		}
		f.To = &t
	}
	return f, nil
}

// SalesLedger devuelve el libro de ventas filtrado por rango y producto.
func (uc *LedgerUsecase) SalesLedger(ctx context.Context, dateFrom, dateTo string, productID *int) ([]dto.SalesLedgerEntry, error) {
	f, err := parseFilter(dateFrom, dateTo, productID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.sales.ListRows(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesLedgerEntry, 0, len(rows))
	for _, r := range rows {
		unitPrice := 0.0
		if r.Quantity > 0 {
			unitPrice = r.TotalAmount / float64(r.Quantity)
		}
		out = append(out, dto.SalesLedgerEntry{
			SaleID:      r.ID,
			Date:        r.SaleDate,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   unitPrice,
			TotalAmount: r.TotalAmount,
		})
	}
	return out, nil
}

// PurchaseLedger devuelve el libro de compras filtrado por rango y producto.
func (uc *LedgerUsecase) PurchaseLedger(ctx context.Context, dateFrom, dateTo string, productID *int) ([]dto.PurchaseLedgerEntry, error) {
	f, err := parseFilter(dateFrom, dateTo, productID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.purchases.ListRows(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseLedgerEntry, 0, len(rows))
	for _, r := range rows {
		unitCost := 0.0
		if r.Quantity > 0 {
			unitCost = r.TotalCost / float64(r.Quantity)
		}
		out = append(out, dto.PurchaseLedgerEntry{
			PurchaseID:  r.ID,
			Date:        r.PurchaseDate,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitCost:    unitCost,
			TotalCost:   r.TotalCost,
		})
	}
	return out, nil
}

// StockLedger reconstruye el libro de stock completo de un producto: apertura
// derivada, cada movimiento con balance corrido y los totales.
func (uc *LedgerUsecase) StockLedger(ctx context.Context, productID int) (*dto.StockLedgerResponse, error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	totalSales, err := uc.sales.TotalQuantity(ctx, productID, nil)
	if err != nil {
		return nil, err
	}
	totalPurchases, err := uc.purchases.TotalQuantity(ctx, productID, nil)
	if err != nil {
		return nil, err
	}
	opening := stock.Clamp(stock.Opening(p.Stock, totalSales, totalPurchases))

	saleRows, err := uc.sales.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	purchaseRows, err := uc.purchases.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	movs := make([]stock.Movement, 0, len(saleRows)+len(purchaseRows))
	for _, s := range saleRows {
		movs = append(movs, stock.SaleMovement(s.ID, s.SaleDate, s.Quantity, s.TotalAmount))
	}
	for _, pr := range purchaseRows {
		movs = append(movs, stock.PurchaseMovement(pr.ID, pr.PurchaseDate, pr.Quantity, pr.TotalCost))
	}

	lines := stock.History(opening, movs, time.Now())
	history := make([]dto.StockHistoryEntry, 0, len(lines))
	for _, l := range lines {
		history = append(history, dto.StockHistoryEntry{
			Date:                  l.Date,
			TransactionType:       l.Type,
			Reference:             l.Reference,
			Quantity:              l.Quantity,
			StockAfterTransaction: l.Balance,
			Details:               l.Detail,
		})
	}

	return &dto.StockLedgerResponse{
		ProductID:      p.ID,
		ProductName:    p.Name,
		CurrentStock:   p.Stock,
		OpeningStock:   opening,
		TotalPurchases: totalPurchases,
		TotalSales:     totalSales,
		History:        history,
	}, nil
}

// LedgerProducts lista todos los productos con sus totales de movimiento,
// para poblar la selección de libros.
func (uc *LedgerUsecase) LedgerProducts(ctx context.Context) ([]dto.LedgerProduct, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerProduct, 0, len(products))
	for _, p := range products {
		totalSales, err := uc.sales.TotalQuantity(ctx, p.ID, nil)
		if err != nil {
			return nil, err
		}
		totalPurchases, err := uc.purchases.TotalQuantity(ctx, p.ID, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.LedgerProduct{
			ProductID:      p.ID,
			ProductName:    p.Name,
			CurrentStock:   p.Stock,
			Price:          p.SellingPrice,
			TotalPurchases: totalPurchases,
			TotalSales:     totalSales,
			HasActivity:    totalSales > 0 || totalPurchases > 0,
		})
	}
	return out, nil
}

// Summary arma el tablero de resumen: conteos globales, actividad de los
// últimos 30 días y productos con stock bajo.
func (uc *LedgerUsecase) Summary(ctx context.Context) (*dto.LedgerSummaryResponse, error) {
	totalProducts, err := uc.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSales, err := uc.sales.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPurchases, err := uc.purchases.Count(ctx)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -30)
	recentSales, err := uc.sales.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	recentPurchases, err := uc.purchases.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}

	saleQty, err := uc.sales.SumQuantity(ctx)
	if err != nil {
		return nil, err
	}
	purchaseQty, err := uc.purchases.SumQuantity(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.products.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &dto.LedgerSummaryResponse{
		Summary: dto.LedgerSummary{
			TotalProducts:         totalProducts,
			TotalPurchases:        totalPurchases,
			TotalSales:            totalSales,
			RecentPurchases:       recentPurchases,
			RecentSales:           recentSales,
			TotalPurchaseQuantity: purchaseQty,
			TotalSaleQuantity:     saleQty,
			LowStockProducts:      lowStock,
		},
		LastUpdated: time.Now(),
	}, nil
}

// StockSnapshot devuelve el estado de stock de los productos, opcionalmente
// restringido a uno solo. Sin filtros de fecha reporta el stock vivo; con
// corte reconstruye el stock de cada producto a esa fecha. Si la
// reconstrucción de un producto falla, ese producto cae al stock vivo en vez
// de tumbar el reporte completo.
func (uc *LedgerUsecase) StockSnapshot(ctx context.Context, dateFrom, dateTo string, productID *int) ([]dto.StockSnapshot, error) {
	cutoff, hasCutoff, err := stock.Cutoff(dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]dto.StockSnapshot, 0, len(products))
	for _, p := range products {
		if productID != nil && p.ID != *productID {
			continue
		}
		qty := p.Stock
		if hasCutoff {
			derived, derr := uc.stockAsOf(ctx, p.ID, p.Stock, cutoff)
			if derr != nil {
				uc.log.Warn().Err(derr).Int("product_id", p.ID).
					Msg("reconstrucción fallida, se reporta stock vivo")
			} else {
				qty = derived
			}
		}
		out = append(out, dto.StockSnapshot{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.PurchasePrice,
			Stock:       qty,
			StockValue:  stock.Valuation(qty, p.PurchasePrice),
			UnitType:    p.UnitType,
			LastUpdated: now,
		})
	}
	return out, nil
}

// stockAsOf reconstruye el stock de un producto al corte dado.
func (uc *LedgerUsecase) stockAsOf(ctx context.Context, productID, currentStock int, cutoff time.Time) (int, error) {
	totalSales, err := uc.sales.TotalQuantity(ctx, productID, nil)
	if err != nil {
		return 0, err
	}
	totalPurchases, err := uc.purchases.TotalQuantity(ctx, productID, nil)
	if err != nil {
		return 0, err
	}
	salesUpTo, err := uc.sales.TotalQuantity(ctx, productID, &cutoff)
	if err != nil {
		return 0, err
	}
	purchasesUpTo, err := uc.purchases.TotalQuantity(ctx, productID, &cutoff)
	if err != nil {
		return 0, err
	}

	opening := stock.Opening(currentStock, totalSales, totalPurchases)
	return stock.Clamp(stock.AsOf(opening, purchasesUpTo, salesUpTo)), nil
}

// OpeningStock deriva el registro de stock inicial de todos los productos,
// valuado al costo de reposición actual.
func (uc *LedgerUsecase) OpeningStock(ctx context.Context) ([]dto.OpeningStockEntry, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpeningStockEntry, 0, len(products))
	for _, p := range products {
		totalSales, err := uc.sales.TotalQuantity(ctx, p.ID, nil)
		if err != nil {
			return nil, err
		}
		totalPurchases, err := uc.purchases.TotalQuantity(ctx, p.ID, nil)
		if err != nil {
			return nil, err
		}
		opening := stock.Clamp(stock.Opening(p.Stock, totalSales, totalPurchases))
		out = append(out, dto.OpeningStockEntry{
			ProductID:     p.ID,
			ProductName:   p.Name,
			UnitType:      p.UnitType,
			OpeningStock:  opening,
			PurchasePrice: p.PurchasePrice,
			OpeningValue:  stock.Valuation(opening, p.PurchasePrice),
		})
	}
	return out, nil
}

// ProfitLoss arma el estado de resultados bruto por producto sobre un rango
// opcional. El costo de lo vendido se valora al costo de reposición actual.
func (uc *LedgerUsecase) ProfitLoss(ctx context.Context, dateFrom, dateTo string) (*dto.ProfitLossReport, error) {
	f, err := parseFilter(dateFrom, dateTo, nil)
	if err != nil {
		return nil, err
	}
	rows, err := uc.sales.ListRows(ctx, f)
	if err != nil {
		return nil, err
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	costByProduct := make(map[int]float64, len(products))
	for _, p := range products {
		costByProduct[p.ID] = p.PurchasePrice
	}

	type agg struct {
		name    string
		units   int
		revenue float64
	}
	byProduct := make(map[int]*agg)
	order := make([]int, 0)
	for _, r := range rows {
		a, ok := byProduct[r.ProductID]
		if !ok {
			a = &agg{name: r.ProductName}
			byProduct[r.ProductID] = a
			order = append(order, r.ProductID)
		}
		a.units += r.Quantity
		a.revenue += r.TotalAmount
	}

	report := &dto.ProfitLossReport{
		From:        f.From,
		To:          f.To,
		Lines:       make([]dto.ProfitLossLine, 0, len(order)),
		GeneratedAt: time.Now(),
	}
	for _, id := range order {
		a := byProduct[id]
		cogs := stock.Valuation(a.units, costByProduct[id])
		line := dto.ProfitLossLine{
			ProductID:   id,
			ProductName: a.name,
			UnitsSold:   a.units,
			Revenue:     a.revenue,
			COGS:        cogs,
			GrossProfit: a.revenue - cogs,
		}
		report.Lines = append(report.Lines, line)
		report.TotalRevenue += line.Revenue
		report.TotalCOGS += line.COGS
		report.TotalGrossProfit += line.GrossProfit
	}
	return report, nil
}
