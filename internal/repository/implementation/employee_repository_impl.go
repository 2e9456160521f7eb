package implementation

import (
	"context"
	"errors"

	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/mapper"
	"grafica-order-bot/internal/model"
	"grafica-order-bot/internal/repository/contract"
	"grafica-order-bot/internal/repository/specification"

	"gorm.io/gorm"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *EmployeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.EmployeeToModel(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.EmployeeToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var m model.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EmployeeToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
