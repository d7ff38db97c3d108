package http

import (
	"net/http"

	"rentops-backend/internal/security"
	"rentops-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Auth      service.AuthService
	Orders    service.OrderService
	Tasks     service.TaskService
	Earnings  service.EarningsService
	Inventory service.InventoryService
	Catalog   service.CatalogService
	Tokens    security.TokenManager
}

// NewRouter builds the API router. Route names drive the security middleware;
// renaming a route changes its access level to admin-only by default.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(svcs.Tokens))

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost).Name("auth.login")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost).Name("auth.refresh")
	api.HandleFunc("/users", authHandler.Register).Methods(http.MethodPost).Name("users.register")

	orderHandler := NewOrderHandler(svcs.Orders)
	api.HandleFunc("/orders", orderHandler.List).Methods(http.MethodGet).Name("orders.list")
	api.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost).Name("orders.create")
	api.HandleFunc("/orders/{id}", orderHandler.Get).Methods(http.MethodGet).Name("orders.get")
	api.HandleFunc("/orders/{id}", orderHandler.Update).Methods(http.MethodPut).Name("orders.update")
	api.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods(http.MethodPost).Name("orders.update_status")

	taskHandler := NewTaskHandler(svcs.Tasks, svcs.Earnings)
	api.HandleFunc("/worker-tasks", taskHandler.ListByOrder).Methods(http.MethodGet).Name("tasks.list")
	api.HandleFunc("/worker-tasks", taskHandler.Create).Methods(http.MethodPost).Name("tasks.create")
	api.HandleFunc("/worker-tasks/suggest-amount", taskHandler.SuggestAmount).Methods(http.MethodGet).Name("tasks.suggest_amount")
	api.HandleFunc("/worker-tasks/earnings", taskHandler.Earnings).Methods(http.MethodGet).Name("tasks.earnings")
	api.HandleFunc("/worker-tasks/{id}", taskHandler.Get).Methods(http.MethodGet).Name("tasks.get")
	api.HandleFunc("/worker-tasks/{id}", taskHandler.Update).Methods(http.MethodPut).Name("tasks.update")
	api.HandleFunc("/worker-tasks/{id}", taskHandler.Delete).Methods(http.MethodDelete).Name("tasks.delete")

	workerHandler := NewWorkerHandler(svcs.Catalog)
	api.HandleFunc("/workers", workerHandler.List).Methods(http.MethodGet).Name("workers.list")
	api.HandleFunc("/workers", workerHandler.Create).Methods(http.MethodPost).Name("workers.create")
	api.HandleFunc("/workers/{id}", workerHandler.Get).Methods(http.MethodGet).Name("workers.get")
	api.HandleFunc("/workers/{id}", workerHandler.Update).Methods(http.MethodPut).Name("workers.update")
	api.HandleFunc("/workers/{id}/attendance", workerHandler.RecordAttendance).Methods(http.MethodPost).Name("workers.attendance")

	clientHandler := NewClientHandler(svcs.Catalog)
	api.HandleFunc("/clients", clientHandler.List).Methods(http.MethodGet).Name("clients.list")
	api.HandleFunc("/clients", clientHandler.Create).Methods(http.MethodPost).Name("clients.create")
	api.HandleFunc("/clients/{id}", clientHandler.Get).Methods(http.MethodGet).Name("clients.get")
	api.HandleFunc("/clients/{id}", clientHandler.Update).Methods(http.MethodPut).Name("clients.update")

	productHandler := NewProductHandler(svcs.Catalog, svcs.Inventory)
	api.HandleFunc("/products", productHandler.List).Methods(http.MethodGet).Name("products.list")
	api.HandleFunc("/products", productHandler.Create).Methods(http.MethodPost).Name("products.create")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods(http.MethodGet).Name("products.get")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods(http.MethodPut).Name("products.update")
	api.HandleFunc("/products/{id}/availability", productHandler.Availability).Methods(http.MethodGet).Name("products.availability")

	rateHandler := NewRateHandler(svcs.Catalog)
	api.HandleFunc("/task-rates", rateHandler.List).Methods(http.MethodGet).Name("rates.list")
	api.HandleFunc("/task-rates", rateHandler.Create).Methods(http.MethodPost).Name("rates.create")
	api.HandleFunc("/task-rates/{id}", rateHandler.Update).Methods(http.MethodPut).Name("rates.update")
	api.HandleFunc("/task-rates/{id}", rateHandler.Delete).Methods(http.MethodDelete).Name("rates.delete")

	return router
}
