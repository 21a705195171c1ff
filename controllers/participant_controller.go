package controllers

import (
	"encoding/json"
	"net/http"

	"vibematch_server/models"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// ParticipantController struct
type ParticipantController struct {
	ParticipantService *services.ParticipantService
}

func NewParticipantController(service *services.ParticipantService) *ParticipantController {
	return &ParticipantController{ParticipantService: service}
}

// HandleJoinEvent registers an anonymous participant for an event.
func (c *ParticipantController) HandleJoinEvent(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		DisplayName string `json:"displayName"`
	}
	// An empty body is fine; displayName is optional.
	json.NewDecoder(r.Body).Decode(&request)

	participant, err := c.ParticipantService.JoinEvent(r.Context(), eventCode, request.DisplayName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":     "Joined event successfully",
		"anonymousId": participant.AnonymousID,
		"displayName": participant.DisplayName,
		"eventCode":   eventCode,
	})
}

// HandleSubmitResponses stores a participant's questionnaire answers.
func (c *ParticipantController) HandleSubmitResponses(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		AnonymousID string            `json:"anonymousId"`
		Responses   []models.Response `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if request.AnonymousID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Anonymous ID is required"})
		return
	}

	if err := c.ParticipantService.SubmitResponses(r.Context(), eventCode, request.AnonymousID, request.Responses); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "Responses submitted successfully",
		"anonymousId": request.AnonymousID,
	})
}

// HandleSubmitOutfit stores a participant's outfit description.
func (c *ParticipantController) HandleSubmitOutfit(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		AnonymousID string `json:"anonymousId"`
		Outfit      string `json:"outfit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if request.AnonymousID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Anonymous ID is required"})
		return
	}

	if err := c.ParticipantService.SubmitOutfit(r.Context(), eventCode, request.AnonymousID, request.Outfit); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "Outfit submitted successfully",
		"anonymousId": request.AnonymousID,
	})
}

// HandleGetParticipant returns one participant of an event.
func (c *ParticipantController) HandleGetParticipant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	participant, err := c.ParticipantService.GetParticipant(r.Context(), vars["eventCode"], vars["anonymousId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participant)
}
