package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/parcel"
	"marketplace/internal/service/pricing"
	"marketplace/pkg/logger"
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

	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.service.Create(r.Context(), actor, req.ToDomain(), entities.PaymentOperator(req.PaymentOperator))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidName),
			errors.Is(err, parcel.ErrInvalidPhone),
			errors.Is(err, parcel.ErrInvalidAddress),
			errors.Is(err, parcel.ErrInvalidDescription),
			errors.Is(err, parcel.ErrInvalidPaymentMethod),
			errors.Is(err, parcel.ErrInvalidOperator),
			pricing.IsValidationError(err):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, parcel.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, parcel.ErrPaymentDeclined):
			response.Error(w, h.log, http.StatusPaymentRequired, err)
		case errors.Is(err, pricing.ErrUnknownDistance):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("package created",
		logger.NewField("package_id", created.ID),
		logger.NewField("tracking_number", created.TrackingNumber),
	)

	w.Header().Set("Location", "/packages/"+created.ID)
	response.JSON(w, h.log, http.StatusCreated, dto.FromPackage(created))
}
