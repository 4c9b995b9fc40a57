package routes

import (
	"sparkd_server/controllers"
	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// RegisterConversationRoutes sets up conversation listing under /api/conversations
func RegisterConversationRoutes(r *mux.Router, conversationService *services.ConversationService, identity controllers.IdentityResolver) {
	controller := controllers.NewConversationController(conversationService, identity)

	conversationRouter := r.PathPrefix("/api/conversations").Subrouter()
	conversationRouter.HandleFunc("", controller.HandleListConversations).Methods("GET")
}
