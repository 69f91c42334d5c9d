package usecase

import (
	"context"

	"pedidos/internal/domain"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) (bool, error)
}

// OrderUseCase keeps the controller free of storage types. The CRUD
// operations carry no business rules, so each call delegates straight
// to the repository.
type OrderUseCase struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewOrderUseCase(repo OrderRepository, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created, err := uc.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order created", zap.String("orderId", created.OrderID), zap.Int("itemCount", len(created.Items)))
	return created, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.repo.FindByID(ctx, orderID)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *OrderUseCase) UpdateOrder(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, error) {
	updated, err := uc.repo.Update(ctx, orderID, order)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order updated", zap.String("orderId", orderID), zap.Int("itemCount", len(updated.Items)))
	return updated, nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	deleted, err := uc.repo.Delete(ctx, orderID)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.logger.Info("order deleted", zap.String("orderId", orderID))
	}
	return deleted, nil
}
