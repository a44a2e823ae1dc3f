package package_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/service/dispatch"
	"marketplace/internal/service/parcel"
	"marketplace/pkg/logger"
)

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("package.status.changed: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("package.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// must stop; the message is then left unmarked and gets redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("package.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("package", event.PackageID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("package.status.changed processing")

	pkg, err := h.dispatchService.ProcessPackageEvent(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler invalid event")

		case errors.Is(err, dispatch.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler status never reached by package")

		case errors.Is(err, parcel.ErrPackageNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler package not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("package.status.changed handler failed to process package")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("package", pkg.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", pkg.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("package.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
