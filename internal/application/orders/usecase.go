package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/internal/domain/stock"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Usecase procesa pedidos simulados entrantes por los webhooks de mensajería.
// Los fallos de negocio (producto desconocido, stock insuficiente) se
// devuelven como respuesta de error con HTTP 200: así confirma recepción un
// webhook de proveedor.
type Usecase struct {
	products repository.ProductRepository
	tx       usecase.TxRunner
	log      *logger.Logger
}

func NewUsecase(products repository.ProductRepository, tx usecase.TxRunner, log *logger.Logger) *Usecase {
	return &Usecase{products: products, tx: tx, log: log}
}

// PlaceWhatsAppOrder valida y registra un pedido multi-renglón como ventas,
// todo o nada. Devuelve (respuesta, nil) también en fallos de negocio; el
// error solo es no-nil ante fallas de infraestructura.
func (uc *Usecase) PlaceWhatsAppOrder(ctx context.Context, req dto.WhatsAppOrderRequest) (*dto.WhatsAppOrderResponse, error) {
	if len(req.Items) == 0 {
		return &dto.WhatsAppOrderResponse{Status: "error", Message: "El pedido no tiene renglones"}, nil
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	// Validación completa antes de tocar nada.
	type line struct {
		product *entity.Product
		qty     int
	}
	lines := make([]line, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		p := matchProduct(products, item.ProductName)
		if p == nil {
			return &dto.WhatsAppOrderResponse{
				Status:  "error",
				Message: fmt.Sprintf("Producto '%s' no encontrado", item.ProductName),
			}, nil
		}
		if item.Quantity <= 0 {
			return &dto.WhatsAppOrderResponse{
				Status:  "error",
				Message: fmt.Sprintf("Cantidad inválida para '%s'", item.ProductName),
			}, nil
		}
		if p.Stock < item.Quantity {
			return &dto.WhatsAppOrderResponse{
				Status: "error",
				Message: fmt.Sprintf("Stock insuficiente de '%s': disponible %d, pedido %d",
					p.Name, p.Stock, item.Quantity),
			}, nil
		}
		lines = append(lines, line{product: p, qty: item.Quantity})
		total += stock.Valuation(item.Quantity, p.SellingPrice)
	}

	orderRef := uuid.NewString()
	now := time.Now()

	err = uc.tx.Run(ctx, func(r usecase.Repos) error {
		for _, l := range lines {
			ok, err := r.Products.DecrementStock(ctx, l.product.ID, l.qty)
			if err != nil {
				return err
			}
			if !ok {
				// Otro escritor consumió el stock entre la validación y acá.
				return fmt.Errorf("stock insuficiente de '%s'", l.product.Name)
			}
			sale := &entity.Sale{
				ProductID:   l.product.ID,
				Quantity:    l.qty,
				TotalAmount: stock.Valuation(l.qty, l.product.SellingPrice),
				SaleDate:    now,
			}
			if err := r.Sales.Create(ctx, sale); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("order_ref", orderRef).Msg("pedido de WhatsApp rechazado en transacción")
		return &dto.WhatsAppOrderResponse{Status: "error", Message: err.Error()}, nil
	}

	uc.log.Info().Str("order_ref", orderRef).Str("customer", req.CustomerName).
		Float64("total", total).Int("items", len(lines)).Msg("pedido de WhatsApp registrado")

	return &dto.WhatsAppOrderResponse{
		Status:    "success",
		Message:   fmt.Sprintf("Pedido de %s registrado: %d renglones", req.CustomerName, len(lines)),
		TotalBill: total,
		OrderRef:  orderRef,
	}, nil
}

// SMSReply arma la respuesta a un SMS entrante: se busca un nombre de
// producto contenido en el texto libre del mensaje y se contesta precio y
// disponibilidad. Siempre hay respuesta; los cuerpos sin producto reconocible
// reciben un mensaje de ayuda.
func (uc *Usecase) SMSReply(ctx context.Context, body string) (string, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return "", err
	}

	if p := matchProductInText(products, body); p != nil {
		return fmt.Sprintf("%s: %.2f por %s. Stock disponible: %d.",
			p.Name, p.SellingPrice, p.UnitType, p.Stock), nil
	}
	return "Producto no reconocido. Envíe el nombre de un producto para consultar su precio.", nil
}
