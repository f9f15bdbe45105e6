package dto

import "time"

// SalesLedgerEntry línea del libro de ventas. unit_price se deriva del
// snapshot total_amount/quantity, no del precio actual del catálogo.
type SalesLedgerEntry struct {
	SaleID      int       `json:"sale_id"`
	Date        time.Time `json:"date"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
}

// PurchaseLedgerEntry línea del libro de compras.
type PurchaseLedgerEntry struct {
	PurchaseID  int       `json:"purchase_id"`
	Date        time.Time `json:"date"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitCost    float64   `json:"unit_cost"`
	TotalCost   float64   `json:"total_cost"`
}

// StockHistoryEntry línea del libro de stock con balance corrido.
type StockHistoryEntry struct {
	Date                  time.Time `json:"date"`
	TransactionType       string    `json:"transaction_type"` // OPENING, PURCHASE, SALE
	Reference             string    `json:"reference"`
	Quantity              int       `json:"quantity"`
	StockAfterTransaction int       `json:"stock_after_transaction"`
	Details               string    `json:"details"`
}

// StockLedgerResponse libro de stock completo de un producto.
type StockLedgerResponse struct {
	ProductID      int                 `json:"product_id"`
	ProductName    string              `json:"product_name"`
	CurrentStock   int                 `json:"current_stock"`
	OpeningStock   int                 `json:"opening_stock"`
	TotalPurchases int                 `json:"total_purchases"`
	TotalSales     int                 `json:"total_sales"`
	History        []StockHistoryEntry `json:"history"`
}

// LedgerProduct producto con actividad, para la selección de libros.
type LedgerProduct struct {
	ProductID      int     `json:"product_id"`
	ProductName    string  `json:"product_name"`
	CurrentStock   int     `json:"current_stock"`
	Price          float64 `json:"price"`
	TotalPurchases int     `json:"total_purchases"`
	TotalSales     int     `json:"total_sales"`
	HasActivity    bool    `json:"has_activity"`
}

// LedgerSummary tablero de resumen de todos los libros.
type LedgerSummary struct {
	TotalProducts         int `json:"total_products"`
	TotalPurchases        int `json:"total_purchases"`
	TotalSales            int `json:"total_sales"`
	RecentPurchases       int `json:"recent_purchases"` // últimos 30 días
	RecentSales           int `json:"recent_sales"`
	TotalPurchaseQuantity int `json:"total_purchase_quantity"`
	TotalSaleQuantity     int `json:"total_sale_quantity"`
	LowStockProducts      int `json:"low_stock_products"` // stock <= 10
}

// LedgerSummaryResponse envuelve el resumen con su timestamp.
type LedgerSummaryResponse struct {
	Summary     LedgerSummary `json:"summary"`
	LastUpdated time.Time     `json:"last_updated"`
}

// StockSnapshot estado de stock de un producto, vivo o reconstruido a una
// fecha de corte. price es el costo de reposición (valuación de inventario).
type StockSnapshot struct {
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	StockValue  float64   `json:"stock_value"`
	UnitType    string    `json:"unit_type"`
	LastUpdated time.Time `json:"last_updated"`
}

// OpeningStockEntry línea del registro de stock inicial derivado.
type OpeningStockEntry struct {
	ProductID     int     `json:"product_id"`
	ProductName   string  `json:"product_name"`
	UnitType      string  `json:"unit_type"`
	OpeningStock  int     `json:"opening_stock"`
	PurchasePrice float64 `json:"purchase_price"`
	OpeningValue  float64 `json:"opening_value"`
}

// ProfitLossLine línea por producto del estado de resultados.
type ProfitLossLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"` // unidades vendidas × costo de reposición actual
	GrossProfit float64 `json:"gross_profit"`
}

// ProfitLossReport estado de resultados bruto sobre un rango opcional.
type ProfitLossReport struct {
	From             *time.Time       `json:"from,omitempty"`
	To               *time.Time       `json:"to,omitempty"`
	Lines            []ProfitLossLine `json:"lines"`
	TotalRevenue     float64          `json:"total_revenue"`
	TotalCOGS        float64          `json:"total_cogs"`
	TotalGrossProfit float64          `json:"total_gross_profit"`
	GeneratedAt      time.Time        `json:"generated_at"`
}
