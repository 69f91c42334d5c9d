package server

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"pedidos/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(orderCtrl *controller.OrderController, db *sql.DB, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler(db, logger))

	r.Post("/order", orderCtrl.CreateOrder)
	r.Get("/order/list", orderCtrl.ListOrders)
	r.Get("/order/{orderId}", orderCtrl.GetOrder)
	r.Put("/order/{orderId}", orderCtrl.UpdateOrder)
	r.Delete("/order/{orderId}", orderCtrl.DeleteOrder)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Route not found"})
	})

	return r
}

func healthHandler(db *sql.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
