package controllers

import (
	"encoding/json"
	"net/http"

	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// MatchController struct
type MatchController struct {
	MatchService *services.MatchService
}

func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleRunMatchmaking triggers the matchmaking algorithm for an event
// (host action). Pass force=true to delete existing matches and re-run.
func (c *MatchController) HandleRunMatchmaking(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		Force bool `json:"force"`
	}
	json.NewDecoder(r.Body).Decode(&request)

	matches, err := c.MatchService.Run(r.Context(), eventCode, request.Force)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Matchmaking completed successfully",
		"matchCount": len(matches),
	})
}

// HandleGetMatch returns the match of one participant.
func (c *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]
	anonymousID := r.URL.Query().Get("anonymousId")
	if anonymousID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Anonymous ID is required"})
		return
	}

	match, err := c.MatchService.GetMatchForParticipant(r.Context(), eventCode, anonymousID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !match.Matched {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"matched": false,
			"message": "You are unmatched in this round",
		})
		return
	}
	writeJSON(w, http.StatusOK, match)
}
