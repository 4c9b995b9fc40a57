package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"sparkd_server/controllers"
	"sparkd_server/routes"
	"sparkd_server/services"
	"sparkd_server/socket"
	"sparkd_server/utils"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Record stores
	actionStore := &services.DynamoActionStore{Dynamo: dynamoService}
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	conversationService := &services.ConversationService{Dynamo: dynamoService}
	notificationService := &services.NotificationService{Dynamo: dynamoService}

	// Socket hub for live match pushes
	hub := socket.NewHub()
	go func() {
		if err := hub.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer hub.Close()

	// Matching gate
	likeLimit := envInt("LIKE_DAILY_LIMIT", services.DefaultDailyLikeLimit)
	quotaZone := utils.ReferenceZone(envInt("QUOTA_TZ_OFFSET_HOURS", services.DefaultQuotaZoneOffsetHours))
	actionService := &services.ActionService{
		Validator:     &services.ActionValidator{Profiles: userProfileService, Actions: actionStore},
		Quota:         services.NewQuotaTracker(actionStore, likeLimit, quotaZone),
		Detector:      &services.MatchDetector{Actions: actionStore},
		Actions:       actionStore,
		Conversations: conversationService,
		Notifier: &services.NotificationDispatcher{
			Notifications: notificationService,
			Profiles:      userProfileService,
			Pusher:        hub,
		},
	}

	s3Service, err := services.NewS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}

	// Caller identity comes from the auth proxy header
	identity := controllers.NewHeaderIdentityResolver()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Sparkd")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register the privacy policy page
	r.HandleFunc("/privacy-policy", routes.PrivacyPolicyHandler).Methods("GET")

	// Socket.IO endpoint
	r.PathPrefix("/socket.io/").Handler(hub.Handler())

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService, identity)
	routes.RegisterActionRoutes(r, actionService, identity)
	routes.RegisterConversationRoutes(r, conversationService, identity)
	routes.RegisterNotificationRoutes(r, notificationService, identity)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", controllers.DefaultIdentityHeader},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", name, raw, fallback)
		return fallback
	}
	return value
}
