package routes

import (
	"vibematch_server/controllers"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterFollowUpRoutes sets up follow-up routes under /api/events
func RegisterFollowUpRoutes(r *mux.Router, followUpService *services.FollowUpService) {
	controller := controllers.NewFollowUpController(followUpService)

	followUpRouter := r.PathPrefix("/api/events").Subrouter()

	followUpRouter.HandleFunc("/{eventCode}/followup", controller.HandleSubmitFollowUp).Methods("POST")
	followUpRouter.HandleFunc("/{eventCode}/followup/stats", controller.HandleFollowUpStats).Methods("GET")
}
