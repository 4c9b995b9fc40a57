package controllers

import (
	"encoding/json"
	"net/http"

	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// NotificationController lists notifications and flips their read state.
type NotificationController struct {
	Notifications services.NotificationStore
	Identity      IdentityResolver
}

// NewNotificationController initializes the controller
func NewNotificationController(notifications services.NotificationStore, identity IdentityResolver) *NotificationController {
	return &NotificationController{Notifications: notifications, Identity: identity}
}

// HandleListNotifications - fetch the caller's notifications, latest first
func (c *NotificationController) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	notifications, err := c.Notifications.ListForUser(r.Context(), userID, 50)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

// HandleMarkRead - mark one of the caller's notifications as read
func (c *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Identity.Resolve(r)
	if err != nil {
		http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	notificationID := mux.Vars(r)["notificationId"]
	if notificationID == "" {
		http.Error(w, `{"error": "Missing notification id"}`, http.StatusBadRequest)
		return
	}

	if err := c.Notifications.MarkRead(r.Context(), userID, notificationID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
