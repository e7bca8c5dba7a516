package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"krishisanjivni-backend/internal/security"
	"krishisanjivni-backend/internal/service"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	SoilCheck *SoilCheckHandler
	Advisory  *AdvisoryHandler
	Admin     *AdminHandler
}

func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	toolSvc service.ToolService,
	whSvc service.WarehouseService,
	bookingSvc service.BookingService,
	paymentSvc service.PaymentService,
	soilSvc service.SoilCheckService,
	marketSvc service.MarketService,
	weatherSvc service.WeatherService,
	chatSvc service.ChatService,
) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(authSvc),
		Profile:   NewProfileHandler(userSvc),
		Catalog:   NewCatalogHandler(toolSvc, whSvc),
		Booking:   NewBookingHandler(bookingSvc),
		Payment:   NewPaymentHandler(paymentSvc),
		SoilCheck: NewSoilCheckHandler(soilSvc),
		Advisory:  NewAdvisoryHandler(marketSvc, weatherSvc, chatSvc),
		Admin:     NewAdminHandler(toolSvc, whSvc, bookingSvc),
	}
}

// NewRouter wires all routes under /api/v1. Public routes need no token,
// farmer routes need an access token, admin routes additionally need the
// admin role.
func NewRouter(h *Handlers, tm security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/tools", h.Catalog.ListTools).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id}", h.Catalog.GetTool).Methods(http.MethodGet)
	api.HandleFunc("/warehouses", h.Catalog.ListWarehouses).Methods(http.MethodGet)
	api.HandleFunc("/warehouses/{id}", h.Catalog.GetWarehouse).Methods(http.MethodGet)

	api.HandleFunc("/market/prices", h.Advisory.MarketPrices).Methods(http.MethodGet)
	api.HandleFunc("/market/fertilizers", h.Advisory.Fertilizers).Methods(http.MethodGet)
	api.HandleFunc("/weather", h.Advisory.Weather).Methods(http.MethodGet)
	api.HandleFunc("/chat/messages", h.Advisory.SendChatMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat/messages", h.Advisory.ChatHistory).Methods(http.MethodGet)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(Authenticate(tm))

	auth.HandleFunc("/profile", h.Profile.Get).Methods(http.MethodGet)
	auth.HandleFunc("/profile", h.Profile.Update).Methods(http.MethodPut)

	auth.HandleFunc("/bookings/tools", h.Booking.CreateToolBooking).Methods(http.MethodPost)
	auth.HandleFunc("/bookings/warehouses", h.Booking.CreateWarehouseBooking).Methods(http.MethodPost)
	auth.HandleFunc("/bookings", h.Booking.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{type:tool|warehouse}/{id}", h.Booking.Cancel).Methods(http.MethodDelete)

	auth.HandleFunc("/payments/order", h.Payment.CreateOrder).Methods(http.MethodPost)
	auth.HandleFunc("/payments/record", h.Payment.Record).Methods(http.MethodPost)
	auth.HandleFunc("/payments", h.Payment.ListMine).Methods(http.MethodGet)

	auth.HandleFunc("/soil-checks", h.SoilCheck.Request).Methods(http.MethodPost)
	auth.HandleFunc("/soil-checks", h.SoilCheck.ListMine).Methods(http.MethodGet)

	// Admin
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(Authenticate(tm), RequireAdmin)

	admin.HandleFunc("/tools", h.Admin.ListTools).Methods(http.MethodGet)
	admin.HandleFunc("/tools", h.Admin.AddTool).Methods(http.MethodPost)
	admin.HandleFunc("/tools/{id}", h.Admin.UpdateTool).Methods(http.MethodPut)
	admin.HandleFunc("/tools/{id}", h.Admin.DeleteTool).Methods(http.MethodDelete)

	admin.HandleFunc("/warehouses", h.Admin.AddWarehouse).Methods(http.MethodPost)
	admin.HandleFunc("/warehouses/{id}", h.Admin.UpdateWarehouse).Methods(http.MethodPut)
	admin.HandleFunc("/warehouses/{id}", h.Admin.DeleteWarehouse).Methods(http.MethodDelete)
	admin.HandleFunc("/warehouses/{id}/storage-options", h.Admin.AddStorageOption).Methods(http.MethodPost)
	admin.HandleFunc("/warehouses/{id}/storage-options/{optionId}", h.Admin.RemoveStorageOption).Methods(http.MethodDelete)

	admin.HandleFunc("/bookings", h.Admin.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{type:tool|warehouse}/{id}/accept", h.Admin.AcceptBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{type:tool|warehouse}/{id}/reject", h.Admin.RejectBooking).Methods(http.MethodPost)

	return r
}
