package controllers

import (
	"encoding/json"
	"net/http"

	"sparkd_server/services"
)

// ConversationController lists the caller's conversations.
type ConversationController struct {
	Conversations services.ConversationStore
	Identity      IdentityResolver
}

// NewConversationController initializes the controller
func NewConversationController(conversations services.ConversationStore, identity IdentityResolver) *ConversationController {
	return &ConversationController{Conversations: conversations, Identity: identity}
}

// HandleListConversations - fetch all conversations for the caller
func (c *ConversationController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	conversations, err := c.Conversations.ListForUser(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}
