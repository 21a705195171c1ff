package routes

import (
	"vibematch_server/controllers"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterParticipantRoutes sets up participant routes under /api/events
func RegisterParticipantRoutes(r *mux.Router, participantService *services.ParticipantService) {
	controller := controllers.NewParticipantController(participantService)

	participantRouter := r.PathPrefix("/api/events").Subrouter()

	participantRouter.HandleFunc("/{eventCode}/join", controller.HandleJoinEvent).Methods("POST")
	participantRouter.HandleFunc("/{eventCode}/responses", controller.HandleSubmitResponses).Methods("POST")
	participantRouter.HandleFunc("/{eventCode}/outfit", controller.HandleSubmitOutfit).Methods("POST")
	participantRouter.HandleFunc("/{eventCode}/participants/{anonymousId}", controller.HandleGetParticipant).Methods("GET")
}
