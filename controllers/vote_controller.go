package controllers

import (
	"encoding/json"
	"net/http"

	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// VoteController struct
type VoteController struct {
	VoteService *services.VoteService
}

func NewVoteController(service *services.VoteService) *VoteController {
	return &VoteController{VoteService: service}
}

// HandleSubmitVote records an outfit vote.
func (c *VoteController) HandleSubmitVote(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	var request struct {
		VoterID       string `json:"voterId"`
		OutfitOwnerID string `json:"outfitOwnerId"`
		Score         int    `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	if err := c.VoteService.SubmitVote(r.Context(), eventCode, request.VoterID, request.OutfitOwnerID, request.Score); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Vote submitted successfully"})
}

// HandleGetLeaderboard returns the outfit leaderboard for an event.
func (c *VoteController) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventCode := mux.Vars(r)["eventCode"]

	leaderboard, err := c.VoteService.Leaderboard(r.Context(), eventCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboard)
}
