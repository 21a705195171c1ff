package controllers

import (
	"encoding/json"
	"net/http"
	"os"

	"vibematch_server/models"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// EventController struct
type EventController struct {
	EventService *services.EventService
}

func NewEventController(service *services.EventService) *EventController {
	return &EventController{EventService: service}
}

// HandleCreateEvent creates a new event and returns its code.
func (c *EventController) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		HostName          string            `json:"hostName"`
		Questions         []models.Question `json:"questions"`
		CountdownDuration int               `json:"countdownDuration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	event, err := c.EventService.CreateEvent(r.Context(), request.HostName, request.Questions, request.CountdownDuration)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Event created successfully",
		"eventCode": event.EventCode,
		"event":     event,
	})
}

// HandleGetEvent returns event details by code.
func (c *EventController) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	event, err := c.EventService.GetEventByCode(r.Context(), eventCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// HandleStartEvent stamps the event's start time (host action).
func (c *EventController) HandleStartEvent(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	event, err := c.EventService.StartEvent(r.Context(), eventCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Event started successfully",
		"startTime": event.StartTime,
	})
}

// HandleEventQR returns a join QR code for the event as a data URL.
func (c *EventController) HandleEventQR(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		baseURL = scheme + "://" + r.Host
	}

	qr, err := c.EventService.EventQR(r.Context(), eventCode, baseURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"eventCode": eventCode,
		"qrCode":    qr.DataURL,
		"joinUrl":   qr.JoinURL,
	})
}
