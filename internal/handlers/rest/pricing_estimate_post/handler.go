package pricing_estimate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/pricing"
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
	var req dto.PackageDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	quote, err := h.service.Quote(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case pricing.IsValidationError(err):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, pricing.ErrUnknownDistance):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromQuote(quote))
}
