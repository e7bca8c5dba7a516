package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/service"
)

// AdminHandler serves the back-office endpoints: catalog management and
// booking decisions. Every route is behind RequireAdmin.
type AdminHandler struct {
	toolSvc    service.ToolService
	whSvc      service.WarehouseService
	bookingSvc service.BookingService
}

func NewAdminHandler(toolSvc service.ToolService, whSvc service.WarehouseService, bookingSvc service.BookingService) *AdminHandler {
	return &AdminHandler{toolSvc: toolSvc, whSvc: whSvc, bookingSvc: bookingSvc}
}

type toolRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" validate:"required"`
	ImageURL       string  `json:"image_url" validate:"omitempty,url"`
	PricePerDay    float64 `json:"price_per_day" validate:"required,gt=0"`
	PricePerMonth  float64 `json:"price_per_month" validate:"omitempty,gte=0"`
	PricePerSeason float64 `json:"price_per_season" validate:"omitempty,gte=0"`
	Availability   bool    `json:"availability"`
	Location       string  `json:"location"`
}

func (r toolRequest) toDomain(id string) *domain.Tool {
	return &domain.Tool{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		ImageURL:       r.ImageURL,
		PricePerDay:    r.PricePerDay,
		PricePerMonth:  r.PricePerMonth,
		PricePerSeason: r.PricePerSeason,
		Availability:   r.Availability,
		Location:       r.Location,
	}
}

func (h *AdminHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *AdminHandler) AddTool(w http.ResponseWriter, r *http.Request) {
	var req toolRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tool := req.toDomain("")
	if err := h.toolSvc.Add(r.Context(), tool); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *AdminHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	var req toolRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tool := req.toDomain(mux.Vars(r)["id"])
	if err := h.toolSvc.Update(r.Context(), tool); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *AdminHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.toolSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type storageOptionRequest struct {
	StorageType       string  `json:"storage_type" validate:"required"`
	PricePerSqftDay   float64 `json:"price_per_sqft_day" validate:"required,gt=0"`
	PricePerSqftMonth float64 `json:"price_per_sqft_month" validate:"omitempty,gte=0"`
}

type warehouseRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Location       string                 `json:"location" validate:"required"`
	Description    string                 `json:"description"`
	ImageURL       string                 `json:"image_url" validate:"omitempty,url"`
	CapacitySqft   float64                `json:"capacity_sqft" validate:"required,gt=0"`
	StorageOptions []storageOptionRequest `json:"storage_options" validate:"omitempty,dive"`
}

func (r warehouseRequest) toDomain(id string) *domain.Warehouse {
	wh := &domain.Warehouse{
		ID:           id,
		Name:         r.Name,
		Location:     r.Location,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		CapacitySqft: r.CapacitySqft,
	}
	for _, opt := range r.StorageOptions {
		wh.StorageOptions = append(wh.StorageOptions, domain.StorageOption{
			StorageType:       opt.StorageType,
			PricePerSqftDay:   opt.PricePerSqftDay,
			PricePerSqftMonth: opt.PricePerSqftMonth,
		})
	}
	return wh
}

func (h *AdminHandler) AddWarehouse(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	wh := req.toDomain("")
	if err := h.whSvc.Add(r.Context(), wh); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wh)
}

func (h *AdminHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	wh := req.toDomain(mux.Vars(r)["id"])
	if err := h.whSvc.Update(r.Context(), wh); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wh)
}

func (h *AdminHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := h.whSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) AddStorageOption(w http.ResponseWriter, r *http.Request) {
	var req storageOptionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opt := &domain.StorageOption{
		WarehouseID:       mux.Vars(r)["id"],
		StorageType:       req.StorageType,
		PricePerSqftDay:   req.PricePerSqftDay,
		PricePerSqftMonth: req.PricePerSqftMonth,
	}
	if err := h.whSvc.AddStorageOption(r.Context(), opt); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, opt)
}

func (h *AdminHandler) RemoveStorageOption(w http.ResponseWriter, r *http.Request) {
	if err := h.whSvc.RemoveStorageOption(r.Context(), mux.Vars(r)["optionId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookingType, ok := bookingTypeFromQuery(w, r)
	if !ok {
		return
	}
	bookings, err := h.bookingSvc.ListAll(r.Context(), bookingType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	booking, err := h.bookingSvc.Accept(r.Context(), domain.BookingType(vars["type"]), vars["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type rejectBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (h *AdminHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	var req rejectBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	vars := mux.Vars(r)
	booking, err := h.bookingSvc.Reject(r.Context(), domain.BookingType(vars["type"]), vars["id"], req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
