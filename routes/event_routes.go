package routes

import (
	"vibematch_server/controllers"
	"vibematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes sets up routes for event operations under /api/events
func RegisterEventRoutes(r *mux.Router, eventService *services.EventService) {
	controller := controllers.NewEventController(eventService)

	eventRouter := r.PathPrefix("/api/events").Subrouter()

	eventRouter.HandleFunc("", controller.HandleCreateEvent).Methods("POST")
	eventRouter.HandleFunc("/{eventCode}", controller.HandleGetEvent).Methods("GET")
	eventRouter.HandleFunc("/{eventCode}/start", controller.HandleStartEvent).Methods("POST")
	eventRouter.HandleFunc("/{eventCode}/qrcode", controller.HandleEventQR).Methods("GET")
}
