package http

import (
	"net/http"
	"strconv"

	"krishisanjivni-backend/internal/service"
)

// AdvisoryHandler serves the farmer advisory endpoints: mandi prices,
// fertilizer rates, weather and the chat assistant.
type AdvisoryHandler struct {
	marketSvc  service.MarketService
	weatherSvc service.WeatherService
	chatSvc    service.ChatService
}

func NewAdvisoryHandler(marketSvc service.MarketService, weatherSvc service.WeatherService, chatSvc service.ChatService) *AdvisoryHandler {
	return &AdvisoryHandler{marketSvc: marketSvc, weatherSvc: weatherSvc, chatSvc: chatSvc}
}

func (h *AdvisoryHandler) MarketPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.marketSvc.DailyPrices(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *AdvisoryHandler) Fertilizers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.marketSvc.Fertilizers())
}

// Weather accepts either ?city= or ?lat=&lon=.
func (h *AdvisoryHandler) Weather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if city := q.Get("city"); city != "" {
		report, err := h.weatherSvc.ByCity(r.Context(), city)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
		return
	}

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, http.StatusBadRequest, "city or lat/lon is required")
		return
	}
	report, err := h.weatherSvc.ByCoords(r.Context(), lat, lon)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *AdvisoryHandler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The assistant is open to anonymous visitors; the user id is attached
	// only when the caller is signed in.
	reply, err := h.chatSvc.SendMessage(r.Context(), req.SessionID, UserIDFrom(r.Context()), req.Message)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (h *AdvisoryHandler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	messages, err := h.chatSvc.History(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
