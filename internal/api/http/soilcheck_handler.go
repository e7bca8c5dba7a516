package http

import (
	"net/http"

	"krishisanjivni-backend/internal/service"
)

type SoilCheckHandler struct {
	soilSvc service.SoilCheckService
}

func NewSoilCheckHandler(soilSvc service.SoilCheckService) *SoilCheckHandler {
	return &SoilCheckHandler{soilSvc: soilSvc}
}

type soilCheckRequest struct {
	FarmLocation string `json:"farm_location" validate:"required"`
	CropType     string `json:"crop_type" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

func (h *SoilCheckHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req soilCheckRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := h.soilSvc.Request(r.Context(), UserIDFrom(r.Context()), req.FarmLocation, req.CropType, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (h *SoilCheckHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	checks, err := h.soilSvc.ListMine(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}
