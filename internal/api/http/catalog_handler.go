package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"krishisanjivni-backend/internal/service"
)

// CatalogHandler serves the public browse endpoints for tools and warehouses.
type CatalogHandler struct {
	toolSvc service.ToolService
	whSvc   service.WarehouseService
}

func NewCatalogHandler(toolSvc service.ToolService, whSvc service.WarehouseService) *CatalogHandler {
	return &CatalogHandler{toolSvc: toolSvc, whSvc: whSvc}
}

func (h *CatalogHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var maxPrice float64
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		maxPrice = v
	}

	tools, err := h.toolSvc.ListAvailable(r.Context(), q.Get("category"), q.Get("q"), maxPrice)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *CatalogHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.toolSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *CatalogHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.whSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouses)
}

func (h *CatalogHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	wh, err := h.whSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wh)
}
