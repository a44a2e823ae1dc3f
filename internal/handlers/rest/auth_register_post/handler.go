package auth_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
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
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.service.Register(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrWeakPassword),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrInvalidVehicle),
			errors.Is(err, user.ErrInvalidCourierType),
			errors.Is(err, user.ErrInvalidCity):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.FromUser(created))
}
