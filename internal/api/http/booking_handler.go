package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/service"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type toolBookingRequest struct {
	ToolID    string `json:"tool_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type warehouseBookingRequest struct {
	StorageOptionID string  `json:"storage_option_id" validate:"required,uuid"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Sqft            float64 `json:"sqft" validate:"required,gt=0"`
}

func (h *BookingHandler) CreateToolBooking(w http.ResponseWriter, r *http.Request) {
	var req toolBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	booking, err := h.bookingSvc.CreateToolBooking(r.Context(), UserIDFrom(r.Context()), req.ToolID, start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) CreateWarehouseBooking(w http.ResponseWriter, r *http.Request) {
	var req warehouseBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	booking, err := h.bookingSvc.CreateWarehouseBooking(r.Context(), UserIDFrom(r.Context()), req.StorageOptionID, start, end, req.Sqft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	bookingType, ok := bookingTypeFromQuery(w, r)
	if !ok {
		return
	}
	bookings, err := h.bookingSvc.ListMine(r.Context(), bookingType, UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.bookingSvc.Cancel(r.Context(), UserIDFrom(r.Context()), domain.BookingType(vars["type"]), vars["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func bookingTypeFromQuery(w http.ResponseWriter, r *http.Request) (domain.BookingType, bool) {
	switch t := r.URL.Query().Get("type"); t {
	case "tool":
		return domain.BookingTypeTool, true
	case "warehouse":
		return domain.BookingTypeWarehouse, true
	default:
		writeError(w, http.StatusBadRequest, "type must be tool or warehouse")
		return "", false
	}
}
