package ping_get

import (
	"net/http"
	"time"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/response"
)

type Handler struct {
	log       handlerLogger
	service   string
	startedAt time.Time
}

func New(log handlerLogger, service string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		startedAt: time.Now(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message:       &message,
		Service:       h.service,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	})
}
