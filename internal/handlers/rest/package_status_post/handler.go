package package_status_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/service/parcel"
	"marketplace/internal/service/settlement"
	"marketplace/pkg/logger"
)

// Action selects the lifecycle step served by one Handler instance.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionPickUp  Action = "pickup"
	ActionDepart  Action = "depart"
	ActionDeliver Action = "deliver"
	ActionCancel  Action = "cancel"
)

type Handler struct {
	log     handlerLogger
	service Service
	action  Action
}

func New(log handlerLogger, service Service, action Action) *Handler {
	handlerLog := log.With(logger.NewField("action", string(action)))

	return &Handler{
		log:     handlerLog,
		service: service,
		action:  action,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	id := mux.Vars(r)["id"]

	pkg, err := h.apply(r, actor, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("package status changed",
		logger.NewField("package_id", pkg.ID),
		logger.NewField("status", pkg.Status.String()),
	)

	response.JSON(w, h.log, http.StatusOK, dto.FromPackage(pkg))
}

func (h *Handler) apply(r *http.Request, actor entities.Actor, id string) (*entities.Package, error) {
	ctx := r.Context()

	switch h.action {
	case ActionAccept:
		return h.service.Accept(ctx, actor, id)
	case ActionPickUp:
		return h.service.PickUp(ctx, actor, id)
	case ActionDepart:
		return h.service.Depart(ctx, actor, id)
	case ActionDeliver:
		var req dto.DeliverRequest
		if err := decodeOptional(r.Body, &req); err != nil {
			return nil, err
		}
		return h.service.Deliver(ctx, actor, id, req.SignerName)
	case ActionCancel:
		var req dto.CancelRequest
		if err := decodeOptional(r.Body, &req); err != nil {
			return nil, err
		}
		return h.service.Cancel(ctx, actor, id, req.Reason)
	default:
		return nil, errUnknownAction
	}
}

var (
	errInvalidBody   = errors.New("invalid request body")
	errUnknownAction = errors.New("unknown package action")
)

// decodeOptional tolerates an empty body so the service reports missing fields.
func decodeOptional(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, parcel.ErrInvalidPackageID),
		errors.Is(err, parcel.ErrMissingSignerName):
		response.Error(w, h.log, http.StatusBadRequest, err)
	case errors.Is(err, parcel.ErrForbidden),
		errors.Is(err, parcel.ErrCourierBlocked):
		response.Error(w, h.log, http.StatusForbidden, err)
	case errors.Is(err, parcel.ErrPackageNotFound):
		response.Error(w, h.log, http.StatusNotFound, err)
	case errors.Is(err, parcel.ErrAlreadyAccepted),
		errors.Is(err, parcel.ErrStatusConflict),
		errors.Is(err, entities.ErrIllegalTransition),
		errors.Is(err, settlement.ErrAlreadySettled):
		response.Error(w, h.log, http.StatusConflict, err)
	case errors.Is(err, parcel.ErrInsufficientDeposit):
		response.Error(w, h.log, http.StatusUnprocessableEntity, err)
	default:
		response.Error(w, h.log, http.StatusInternalServerError, err)
	}
}
