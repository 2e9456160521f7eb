package dto

// Topics on the in-process event bus.
const (
	TopicOrderSaved     = "pedido.salvo"
	TopicOrderDiscarded = "pedido.descartado"
)

type OrderItemPayload struct {
	Material string `json:"material"`
	Quantity string `json:"quantidade"`
}

// OrderEventPayload carries the full order so a discarded one can be
// re-entered by hand from the log.
type OrderEventPayload struct {
	OrderId        string             `json:"order_id"`
	ClientName     string             `json:"cliente"`
	OrderDate      string             `json:"data_pedido"`
	DeliveryDate   string             `json:"data_entrega"`
	SubmitterLabel string             `json:"atendente"`
	Items          []OrderItemPayload `json:"itens"`
	Error          string             `json:"erro,omitempty"`
}
