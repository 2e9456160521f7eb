package mapper

import (
	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

// OrderToRows explodes an Order into one pedidos row per cart item. The
// slice order follows the cart's insertion order.
func (m *OrderMapper) OrderToRows(o *entity.Order) []*model.OrderRow {
	if o == nil {
		return nil
	}

	rows := make([]*model.OrderRow, 0, len(o.Items))
	for _, item := range o.Items {
		rows = append(rows, &model.OrderRow{
			OrderId:     o.Id,
			Cliente:     o.ClientName,
			Quantidade:  item.Quantity,
			Material:    item.Material,
			DataPedido:  o.OrderDate,
			DataEntrega: o.DeliveryDate,
			Atendente:   o.SubmitterLabel,
		})
	}
	return rows
}

func (m *OrderMapper) EmployeeToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:           e.Id,
		TelegramId:   e.TelegramId,
		DisplayLabel: e.Nome,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *OrderMapper) EmployeeToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:         e.Id,
		TelegramId: e.TelegramId,
		Nome:       e.DisplayLabel,
		CreatedAt:  e.CreatedAt,
	}
}
