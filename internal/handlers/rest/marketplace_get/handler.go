package marketplace_get

import (
	"net/http"
	"strings"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
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
	var city *string
	if v := strings.TrimSpace(r.URL.Query().Get("city")); v != "" {
		city = &v
	}

	pkgs, err := h.service.ListMarketplace(r.Context(), city)
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromPackages(pkgs))
}
