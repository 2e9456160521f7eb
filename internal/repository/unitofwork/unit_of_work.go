package unitofwork

import (
	"context"

	"grafica-order-bot/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OrderRepository() contract.OrderRepository
	EmployeeRepository() contract.EmployeeRepository
}
