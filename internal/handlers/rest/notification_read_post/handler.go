package notification_read_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/notification"
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

	err := h.service.MarkRead(r.Context(), actor.UserID, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidNotificationID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, notification.ErrNotificationNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
