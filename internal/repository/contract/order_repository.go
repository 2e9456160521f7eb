package contract

import (
	"context"

	"grafica-order-bot/internal/entity"
)

type OrderRepository interface {
	// CreateRows inserts every row of one order. Callers run it inside a
	// unit-of-work transaction so a K-item order lands all-or-nothing.
	CreateRows(ctx context.Context, order *entity.Order) error
}
