package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pedidos/internal/domain"
	"pedidos/internal/errors"
)

type stubRepository struct {
	created   *domain.Order
	updatedID string
	deletedID string
	deleted   bool
	err       error
}

func (s *stubRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = order
	return order, nil
}

func (s *stubRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Order{OrderID: orderID, Items: []domain.Item{}}, nil
}

func (s *stubRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Order{{OrderID: "O1", Items: []domain.Item{}}}, nil
}

func (s *stubRepository) Update(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updatedID = orderID
	updated := *order
	updated.OrderID = orderID
	return &updated, nil
}

func (s *stubRepository) Delete(ctx context.Context, orderID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.deletedID = orderID
	return s.deleted, nil
}

func TestOrderUseCase_CreateOrder_Delegates(t *testing.T) {
	repo := &stubRepository{}
	uc := NewOrderUseCase(repo, zap.NewNop())

	order := &domain.Order{OrderID: "O1", Value: 10, CreationDate: time.Now(), Items: []domain.Item{}}
	created, err := uc.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, order, created)
	assert.Equal(t, order, repo.created)
}

func TestOrderUseCase_GetOrder_PropagatesNotFound(t *testing.T) {
	repo := &stubRepository{err: errors.NewNotFoundError("order with id missing not found")}
	uc := NewOrderUseCase(repo, zap.NewNop())

	order, err := uc.GetOrder(context.Background(), "missing")
	assert.Nil(t, order)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderUseCase_ListOrders_Delegates(t *testing.T) {
	repo := &stubRepository{}
	uc := NewOrderUseCase(repo, zap.NewNop())

	orders, err := uc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "O1", orders[0].OrderID)
}

func TestOrderUseCase_UpdateOrder_CarriesPathID(t *testing.T) {
	repo := &stubRepository{}
	uc := NewOrderUseCase(repo, zap.NewNop())

	order := &domain.Order{OrderID: "ignored", Value: 20, Items: []domain.Item{}}
	updated, err := uc.UpdateOrder(context.Background(), "O1", order)

	require.NoError(t, err)
	assert.Equal(t, "O1", updated.OrderID)
	assert.Equal(t, "O1", repo.updatedID)
}

func TestOrderUseCase_DeleteOrder_ReturnsExistence(t *testing.T) {
	repo := &stubRepository{deleted: true}
	uc := NewOrderUseCase(repo, zap.NewNop())

	deleted, err := uc.DeleteOrder(context.Background(), "O1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "O1", repo.deletedID)

	repo.deleted = false
	deleted, err = uc.DeleteOrder(context.Background(), "O2")
	require.NoError(t, err)
	assert.False(t, deleted)
}
