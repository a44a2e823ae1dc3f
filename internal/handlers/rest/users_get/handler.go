package users_get

import (
	"errors"
	"net/http"

	"marketplace/internal/entities"
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

	var role *entities.UserRole
	if v := r.URL.Query().Get("role"); v != "" {
		parsed := entities.UserRole(v)
		switch parsed {
		case entities.RoleSender, entities.RoleCourier, entities.RoleAdmin:
			role = &parsed
		default:
			response.Error(w, h.log, http.StatusBadRequest, user.ErrInvalidRole)
			return
		}
	}

	users, err := h.service.ListUsers(r.Context(), actor, role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromUsers(users))
}
