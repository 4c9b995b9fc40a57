package routes

import (
	"sparkd_server/controllers"
	"sparkd_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up the like/pass endpoint under /api/actions
func RegisterActionRoutes(r *mux.Router, actionService *services.ActionService, identity controllers.IdentityResolver) {
	controller := controllers.NewActionController(actionService, identity)

	actionRouter := r.PathPrefix("/api/actions").Subrouter()
	actionRouter.HandleFunc("", controller.HandleCreateAction).Methods("POST")
}
