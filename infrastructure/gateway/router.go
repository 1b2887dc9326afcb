// Package gateway serves the messaging facade as a JSON HTTP API.
package gateway

import (
	"log/slog"
	"messager/auth"
	"messager/observability"
	"messager/services"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Gateway struct {
	log             *slog.Logger
	messagerService services.IMessagerService
	authService     services.IAuthService
	issuer          *auth.TokenIssuer
	monitor         *observability.Monitor
}

func NewGateway(log *slog.Logger, messagerService services.IMessagerService, authService services.IAuthService,
	issuer *auth.TokenIssuer, monitor *observability.Monitor) *Gateway {
	return &Gateway{
		log:             log,
		messagerService: messagerService,
		authService:     authService,
		issuer:          issuer,
		monitor:         monitor,
	}
}

// Handler builds the router wrapped in the CORS middleware.
func (g *Gateway) Handler(allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.health).Methods(http.MethodGet)

	public := r.PathPrefix("/api/auth").Subrouter()
	public.HandleFunc("/register", g.register).Methods(http.MethodPost)
	public.HandleFunc("/login", g.login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(g.requireBearer)
	api.HandleFunc("/accounts", g.createAccount).Methods(http.MethodPost)
	api.HandleFunc("/users/{address}", g.getUser).Methods(http.MethodGet)
	api.HandleFunc("/usernames/{username}", g.getUserByUsername).Methods(http.MethodGet)
	api.HandleFunc("/invites", g.sendInvite).Methods(http.MethodPost)
	api.HandleFunc("/invites/{address}", g.getInvites).Methods(http.MethodGet)
	api.HandleFunc("/invites/{from}/accept", g.acceptInvite).Methods(http.MethodPost)
	api.HandleFunc("/friends/{address}", g.getFriends).Methods(http.MethodGet)
	api.HandleFunc("/friends/{address}/{friend}/room", g.getFriendRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms/messages", g.sendMessage).Methods(http.MethodPost)
	api.HandleFunc("/rooms/messages/batch", g.sendMultipleMessages).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", g.getRoom).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}
