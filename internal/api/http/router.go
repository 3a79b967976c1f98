package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dressrent-backend/internal/security"
	"dressrent-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Inventory service.InventoryService
	Customers service.CustomerService
	Rentals   service.RentalService
	Reports   service.ReportService
	Admin     service.AdminService
	Tokens    security.TokenManager
}

// NewRouter builds the full /api/v1 route tree.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, Logging)

	api := router.PathPrefix("/api/v1").Subrouter()

	items := NewItemHandler(svcs.Inventory)
	api.HandleFunc("/items", items.Create).Methods(http.MethodPost)
	api.HandleFunc("/items", items.List).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}", items.Get).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}", items.Update).Methods(http.MethodPut)
	api.HandleFunc("/items/{id:[0-9]+}", items.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/items/{id:[0-9]+}/availability", items.Availability).Methods(http.MethodGet)

	customers := NewCustomerHandler(svcs.Customers)
	api.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Delete).Methods(http.MethodDelete)

	rentals := NewRentalHandler(svcs.Rentals, svcs.Inventory)
	api.HandleFunc("/rentals", rentals.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentals.Return).Methods(http.MethodPost)

	reports := NewReportHandler(svcs.Reports)
	api.HandleFunc("/reports/overdue", reports.Overdue).Methods(http.MethodGet)
	api.HandleFunc("/reports/popular-items", reports.PopularItems).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-spenders", reports.TopSpenders).Methods(http.MethodGet)
	api.HandleFunc("/reports/revenue", reports.Revenue).Methods(http.MethodGet)

	admin := NewAdminHandler(svcs.Admin)
	api.HandleFunc("/admin/login", admin.Login).Methods(http.MethodPost)

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(AdminAuth(svcs.Tokens))
	protected.HandleFunc("/reset", admin.Reset).Methods(http.MethodPost)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
