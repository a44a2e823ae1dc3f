package tracking_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/parcel"
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

// ServeHTTP is public: the tracking number is the only credential.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.Track(r.Context(), mux.Vars(r)["trackingNumber"])
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidTrackingNumber):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, parcel.ErrPackageNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromTrackedPackage(pkg))
}
