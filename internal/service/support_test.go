package service

import (
	"context"

	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/repository/contract"
	"grafica-order-bot/internal/repository/specification"
	"grafica-order-bot/internal/repository/unitofwork"
)

// In-memory doubles for the repository and event layers, so dialogue
// turns run without postgres or the watermill bus.

type fakeEmployeeRepo struct {
	byTelegramId map[int64]*entity.Employee
	err          error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byTelegramId: make(map[int64]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	if r.err != nil {
		return r.err
	}
	r.byTelegramId[employee.TelegramId] = employee
	return nil
}

func (r *fakeEmployeeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, sp := range specs {
		if s, ok := sp.(specification.ByTelegramId); ok {
			return r.byTelegramId[s.TelegramId], nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.byTelegramId)), nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (r *fakeOrderRepo) CreateRows(ctx context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.orders = append(r.orders, order)
	return nil
}

type fakeUnitOfWork struct {
	employees *fakeEmployeeRepo
	orders    *fakeOrderRepo

	begun      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error                    { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error                  { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) OrderRepository() contract.OrderRepository {
	return u.orders
}

func (u *fakeUnitOfWork) EmployeeRepository() contract.EmployeeRepository {
	return u.employees
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			employees: newFakeEmployeeRepo(),
			orders:    &fakeOrderRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type publishedMessage struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	published []publishedMessage
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.published = append(p.published, publishedMessage{topic: topic, payload: payload})
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error {
	return nil
}
