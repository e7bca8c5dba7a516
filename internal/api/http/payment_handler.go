package http

import (
	"net/http"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type createOrderRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
	Type      string `json:"bookingType" validate:"required,oneof=tool warehouse"`
}

// recordPaymentRequest carries the client's checkout callback. The amount is
// required by the contract but never trusted; the persisted amount always
// comes from the stored booking cost.
type recordPaymentRequest struct {
	BookingID         string  `json:"bookingId" validate:"required,uuid"`
	Type              string  `json:"bookingType" validate:"required,oneof=tool warehouse"`
	RazorpayPaymentID string  `json:"razorpay_payment_id" validate:"required"`
	RazorpayOrderID   string  `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string  `json:"razorpay_signature" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
}

type recordPaymentResponse struct {
	Success bool            `json:"success"`
	Created bool            `json:"created"`
	Payment *domain.Payment `json:"payment"`
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.paymentSvc.CreateOrder(r.Context(), UserIDFrom(r.Context()), domain.BookingType(req.Type), req.BookingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Record finalizes a checkout. Replays of an already recorded payment come
// back 200 with created=false; the first successful recording is a 201.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, created, err := h.paymentSvc.RecordPayment(r.Context(), UserIDFrom(r.Context()), service.RecordPaymentInput{
		BookingID:         req.BookingID,
		Type:              domain.BookingType(req.Type),
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, recordPaymentResponse{Success: true, Created: created, Payment: payment})
}

func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListMine(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
