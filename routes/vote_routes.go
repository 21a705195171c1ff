package routes

import (
	"vibematch_server/controllers"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterVoteRoutes sets up outfit-vote routes under /api/events
func RegisterVoteRoutes(r *mux.Router, voteService *services.VoteService) {
	controller := controllers.NewVoteController(voteService)

	voteRouter := r.PathPrefix("/api/events").Subrouter()

	voteRouter.HandleFunc("/{eventCode}/vote", controller.HandleSubmitVote).Methods("POST")
	voteRouter.HandleFunc("/{eventCode}/leaderboard", controller.HandleGetLeaderboard).Methods("GET")
}
