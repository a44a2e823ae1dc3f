package notifications_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
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

// ServeHTTP lists the caller's own notifications, newest first.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	list, err := h.service.ListForUser(r.Context(), actor.UserID)
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	unread, err := h.service.UnreadCount(r.Context(), actor.UserID)
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NotificationsResponse{
		Unread:        unread,
		Notifications: dto.FromNotifications(list),
	})
}
