package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError writes the standard {"error":{"code","message"}} envelope.
func RespondWithError(w http.ResponseWriter, statusCode int, code string, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Int("status", statusCode).Msg("failed to encode response")
	}
}

// RespondCreated writes a 201 with a Location header pointing at the new resource.
func RespondCreated(w http.ResponseWriter, location string, payload interface{}) {
	w.Header().Set("Location", location)
	RespondWithJSON(w, http.StatusCreated, payload)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
