package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sparkd_server/services"
)

// ActionGate is the slice of the action service this controller needs.
type ActionGate interface {
	ProcessAction(ctx context.Context, actorID, targetID, kind string) (*services.ActionResult, error)
}

// ActionController handles like/pass requests.
type ActionController struct {
	Gate     ActionGate
	Identity IdentityResolver
}

// NewActionController initializes the controller
func NewActionController(gate ActionGate, identity IdentityResolver) *ActionController {
	return &ActionController{Gate: gate, Identity: identity}
}

type actionResponse struct {
	Accepted       bool   `json:"accepted"`
	Matched        bool   `json:"matched"`
	Remaining      int    `json:"remaining"`
	ConversationID string `json:"conversationId,omitempty"`
}

// HandleCreateAction - caller likes or passes on another user
func (c *ActionController) HandleCreateAction(w http.ResponseWriter, r *http.Request) {
	// Quota state changes on every call, so nothing here is cacheable.
	w.Header().Set("Cache-Control", "no-store")

	actorID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		TargetID string `json:"targetId"`
		Kind     string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💖 %s -> %s (%s)", actorID, request.TargetID, request.Kind)

	result, err := c.Gate.ProcessAction(r.Context(), actorID, request.TargetID, request.Kind)
	if err != nil {
		writeActionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actionResponse{
		Accepted:       result.Accepted,
		Matched:        result.Matched,
		Remaining:      result.Remaining,
		ConversationID: result.ConversationID,
	})
}

// writeActionError maps the gate's error taxonomy onto HTTP statuses.
func writeActionError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	var selfErr *services.SelfActionError
	var notFoundErr *services.NotFoundError
	var duplicateErr *services.DuplicateActionError
	var quotaErr *services.QuotaExceededError
	var transientErr *services.TransientStoreError

	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.As(err, &validationErr):
		writeJSONError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &selfErr):
		writeJSONError(w, http.StatusBadRequest, selfErr.Error())
	case errors.As(err, &notFoundErr):
		writeJSONError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &duplicateErr):
		writeJSONError(w, http.StatusConflict, duplicateErr.Error())
	case errors.As(err, &quotaErr):
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":     quotaErr.Error(),
			"remaining": quotaErr.Remaining,
		})
	case errors.As(err, &transientErr):
		log.Printf("❌ Store failure while processing action: %v", transientErr)
		writeJSONError(w, http.StatusServiceUnavailable, "store temporarily unavailable")
	default:
		log.Printf("❌ Unexpected failure while processing action: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeStoreError maps store-layer failures from the supplemental endpoints
// onto HTTP statuses, mirroring writeActionError's taxonomy handling.
func writeStoreError(w http.ResponseWriter, err error) {
	var notFoundErr *services.NotFoundError
	var transientErr *services.TransientStoreError

	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.As(err, &notFoundErr):
		writeJSONError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &transientErr):
		log.Printf("❌ Store failure: %v", transientErr)
		writeJSONError(w, http.StatusServiceUnavailable, "store temporarily unavailable")
	default:
		log.Printf("❌ Unexpected failure: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
