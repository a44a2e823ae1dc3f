package admin_overview_get

import (
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/report"
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

	overview, err := h.service.Overview(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromOverview(overview))
}
