package dto

// OrderItem renglón de un pedido entrante por webhook.
type OrderItem struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// WhatsAppOrderRequest pedido simulado recibido por el webhook de WhatsApp.
type WhatsAppOrderRequest struct {
	CustomerName string      `json:"customer_name" validate:"required"`
	PhoneNumber  string      `json:"phone_number" validate:"required"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// WhatsAppOrderResponse resultado del pedido. status es "success" o "error";
// los errores de negocio (producto desconocido, stock insuficiente) se
// reportan aquí con HTTP 200, como hace el proveedor de mensajería.
type WhatsAppOrderResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	TotalBill float64 `json:"total_bill,omitempty"`
	OrderRef  string  `json:"order_ref,omitempty"`
}
