package controllers

import (
	"encoding/json"
	"net/http"

	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// FollowUpController struct
type FollowUpController struct {
	FollowUpService *services.FollowUpService
}

func NewFollowUpController(service *services.FollowUpService) *FollowUpController {
	return &FollowUpController{FollowUpService: service}
}

// HandleSubmitFollowUp records a matched participant's reconnect decision.
func (c *FollowUpController) HandleSubmitFollowUp(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		ParticipantID string `json:"participantId"`
		Reconnect     *bool  `json:"reconnect"`
		ContactInfo   string `json:"contactInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}
	if request.ParticipantID == "" || request.Reconnect == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Participant ID and reconnect decision are required"})
		return
	}

	if err := c.FollowUpService.SubmitFollowUp(r.Context(), eventCode, request.ParticipantID, *request.Reconnect, request.ContactInfo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Follow-up submitted successfully"})
}

// HandleFollowUpStats returns anonymized follow-up statistics for the host.
func (c *FollowUpController) HandleFollowUpStats(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	stats, err := c.FollowUpService.Stats(r.Context(), eventCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
