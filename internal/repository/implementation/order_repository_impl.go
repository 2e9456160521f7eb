package implementation

import (
	"context"

	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/mapper"
	"grafica-order-bot/internal/repository/contract"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) CreateRows(ctx context.Context, order *entity.Order) error {
	rows := r.mapper.OrderToRows(order)
	// Single multi-row insert keeps the pedidos rows contiguous and in
	// cart order.
	return r.db.WithContext(ctx).Create(&rows).Error
}
