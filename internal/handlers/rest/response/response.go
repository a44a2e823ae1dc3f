package response

import (
	"encoding/json"
	"net/http"

	"marketplace/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

type ErrorBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error writes {"message": ...}. Internal failures get a fixed text so
// storage details never leak to the client.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	switch {
	case status >= http.StatusInternalServerError:
		log.With(logger.NewField("error", err)).Error("request failed")
	case err != nil:
		message = err.Error()
	}
	JSON(w, log, status, ErrorBody{Message: message})
}
