package order

import (
	"database/sql"

	"pedidos/internal/order/controller"
	"pedidos/internal/order/repository"
	"pedidos/internal/order/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewMySQLOrderRepository(db)
	uc := usecase.NewOrderUseCase(repo, logger)
	return controller.NewOrderController(uc, logger)
}
