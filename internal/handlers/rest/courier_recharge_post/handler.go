package courier_recharge_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/settlement"
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

	var req dto.RechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	balances, err := h.service.Recharge(r.Context(), actor, entities.Recharge{
		CourierID: mux.Vars(r)["id"],
		Amount:    req.Amount,
		Phone:     req.Phone,
		Operator:  entities.PaymentOperator(req.Operator),
	})
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidAmount),
			errors.Is(err, settlement.ErrInvalidCourierID),
			errors.Is(err, settlement.ErrInvalidOperator),
			errors.Is(err, settlement.ErrInvalidPhone):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, settlement.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, settlement.ErrCourierNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, settlement.ErrNotCourier):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		case errors.Is(err, settlement.ErrPaymentDeclined):
			response.Error(w, h.log, http.StatusPaymentRequired, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromBalances(balances))
}
