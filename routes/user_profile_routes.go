package routes

import (
	"sparkd_server/controllers"
	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile CRUD under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.UserProfileService, identity controllers.IdentityResolver) {
	controller := controllers.NewUserProfileController(profileService, identity)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleCreateProfile).Methods("POST")
	profileRouter.HandleFunc("", controller.HandleUpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("", controller.HandleDeleteProfile).Methods("DELETE")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
}
