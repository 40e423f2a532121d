package handler

import (
	"net/http"

	"github.com/dmelim/userlist/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService) {
	h := NewUserHandler(users)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /{$}", http.RedirectHandler("/register", http.StatusSeeOther))
	mux.HandleFunc("GET /register", h.HandleRegisterForm)
	mux.HandleFunc("POST /register", h.HandleRegister)
	mux.HandleFunc("GET /users", h.HandleListUsers)
}
