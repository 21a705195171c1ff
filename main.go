package main

import (
	"log"
	"net/http"
	"os"

	"vibematch_server/routes"
	"vibematch_server/services"
	"vibematch_server/socket"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	eventService := &services.EventService{Dynamo: dynamoService}
	participantService := &services.ParticipantService{Dynamo: dynamoService, Events: eventService}
	matchRepository := &services.MatchRepository{Dynamo: dynamoService}
	matchService := &services.MatchService{
		Events:       eventService,
		Participants: participantService,
		Matches:      matchRepository,
		Matchmaker:   services.NewMatchmaker(services.NewCompatibilityScorer()),
	}
	voteService := &services.VoteService{Dynamo: dynamoService, Events: eventService, Participants: participantService}
	followUpService := &services.FollowUpService{Dynamo: dynamoService, Events: eventService, Participants: participantService, Matches: matchRepository}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the Socket.IO server for lobby and chat
	socketServer := socket.NewSocketServer(clockwork.NewRealClock())
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterEventRoutes(r, eventService)
	routes.RegisterParticipantRoutes(r, participantService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterVoteRoutes(r, voteService)
	routes.RegisterFollowUpRoutes(r, followUpService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
