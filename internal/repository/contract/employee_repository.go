package contract

import (
	"context"

	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/repository/specification"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
