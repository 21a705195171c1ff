package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vibematch_server/services"
)

// writeJSON encodes a payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service errors onto HTTP statuses and a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEventInactive),
		errors.Is(err, services.ErrInsufficientParticipants):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrParticipantNotFound),
		errors.Is(err, services.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyMatched):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("❌ Internal error: %v", err)
		writeJSON(w, status, map[string]string{"message": "Server error"})
		return
	}
	writeJSON(w, status, map[string]string{"message": err.Error()})
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Vibematch"})
}
