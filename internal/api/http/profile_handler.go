package http

import (
	"net/http"

	"krishisanjivni-backend/internal/service"
)

type ProfileHandler struct {
	userSvc service.UserService
}

func NewProfileHandler(userSvc service.UserService) *ProfileHandler {
	return &ProfileHandler{userSvc: userSvc}
}

type updateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=1"`
	Phone    string `json:"phone" validate:"omitempty,min=10,max=15"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetProfile(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userSvc.UpdateProfile(r.Context(), UserIDFrom(r.Context()), req.FullName, req.Phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
