package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sparkd_server/models"
	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles profile CRUD.
type UserProfileController struct {
	ProfileService *services.UserProfileService
	Identity       IdentityResolver
}

// NewUserProfileController initializes the controller
func NewUserProfileController(service *services.UserProfileService, identity IdentityResolver) *UserProfileController {
	return &UserProfileController{ProfileService: service, Identity: identity}
}

// HandleCreateProfile - create the caller's profile
func (c *UserProfileController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	created, err := c.ProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleGetProfile - fetch a profile by id
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusServiceUnavailable)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateProfile - update the caller's profile
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	updated, err := c.ProfileService.UpdateUserProfile(r.Context(), profile)
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// HandleDeleteProfile - delete the caller's profile
func (c *UserProfileController) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	if err := c.ProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
