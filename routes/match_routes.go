package routes

import (
	"vibematch_server/controllers"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up matchmaking routes under /api/events
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/events").Subrouter()

	matchRouter.HandleFunc("/{eventCode}/reveal", controller.HandleRunMatchmaking).Methods("POST")
	matchRouter.HandleFunc("/{eventCode}/matches", controller.HandleGetMatch).Methods("GET")
}
