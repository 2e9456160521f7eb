package service

import (
	"context"
	"time"

	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/repository/specification"
	"grafica-order-bot/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAuthService interface {
	IsAuthorized(ctx context.Context, telegramId int64) (bool, error)
	// TryEnroll enrolls the user iff the supplied secret matches the
	// configured one. Unlimited attempts, no lockout.
	TryEnroll(ctx context.Context, telegramId int64, label, suppliedSecret string) (bool, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	enrollSecret string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, enrollSecret string) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		enrollSecret: enrollSecret,
	}
}

func (s *authService) IsAuthorized(ctx context.Context, telegramId int64) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByTelegramId{TelegramId: telegramId})
	if err != nil {
		return false, err
	}
	return employee != nil, nil
}

func (s *authService) TryEnroll(ctx context.Context, telegramId int64, label, suppliedSecret string) (bool, error) {
	if suppliedSecret != s.enrollSecret {
		return false, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A user re-entering the secret after enrollment is fine.
	existing, err := uow.EmployeeRepository().FindOne(ctx, specification.ByTelegramId{TelegramId: telegramId})
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}

	employee := &entity.Employee{
		Id:           uuid.New(),
		TelegramId:   telegramId,
		DisplayLabel: label,
		CreatedAt:    time.Now(),
	}
	if err := uow.EmployeeRepository().Create(ctx, employee); err != nil {
		return false, err
	}
	return true, nil
}
