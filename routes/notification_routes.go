package routes

import (
	"sparkd_server/controllers"
	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up notification routes under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService, identity controllers.IdentityResolver) {
	controller := controllers.NewNotificationController(notificationService, identity)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.HandleFunc("", controller.HandleListNotifications).Methods("GET")
	notificationRouter.HandleFunc("/{notificationId}/read", controller.HandleMarkRead).Methods("PATCH")
}
