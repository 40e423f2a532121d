package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmelim/userlist/internal/domain"
	"github.com/dmelim/userlist/internal/service"
	"github.com/dmelim/userlist/internal/view"
)

// UserHandler handles the registration form and the user listing.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleRegisterForm renders the empty registration form.
// GET /register
func (h *UserHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	view.RegisterPage(view.RegisterForm{}).Render(r.Context(), w)
}

// HandleRegister processes a registration form submission. On success it
// redirects to the listing; on validation failure it re-renders the form with
// the submitted values and a message per failing field.
// POST /register
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")

	if _, err := h.users.Register(r.Context(), name, email); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			view.RegisterPage(view.RegisterForm{
				Name:   name,
				Email:  email,
				Errors: verr.Fields,
			}).Render(r.Context(), w)
			return
		}
		slog.Error("register user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleListUsers renders all registered users in insertion order.
// GET /users
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	view.UsersPage(users).Render(r.Context(), w)
}
