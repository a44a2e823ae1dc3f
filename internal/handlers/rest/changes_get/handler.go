package changes_get

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/pkg/auth"
	"marketplace/pkg/logger"
)

const DefaultHeartbeat = 25 * time.Second

var errStreamingUnsupported = errors.New("streaming unsupported")

type Handler struct {
	log       handlerLogger
	broker    Broker
	heartbeat time.Duration
}

func New(log handlerLogger, broker Broker, heartbeat time.Duration) *Handler {
	handlerLog := log.With()

	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}

	return &Handler{
		log:       handlerLog,
		broker:    broker,
		heartbeat: heartbeat,
	}
}

// ServeHTTP streams change signals as server-sent events until the client
// goes away or the broker closes. Clients re-fetch on every signal.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, auth.ErrMissingToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.Error(w, h.log, http.StatusInternalServerError, errStreamingUnsupported)
		return
	}

	signals, cancel := h.broker.Subscribe(r.Context(), actor.UserID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case signal, open := <-signals:
			if !open {
				return
			}
			payload, err := json.Marshal(dto.FromChangeSignal(signal))
			if err != nil {
				h.log.With(logger.NewField("error", err)).Error("encode change signal")
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
