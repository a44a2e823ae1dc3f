package courier_availability_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	var req dto.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Available == nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("available flag is required"))
		return
	}

	updated, err := h.service.SetAvailability(r.Context(), actor, mux.Vars(r)["id"], *req.Available)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, user.ErrNotCourier):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromUser(updated))
}
