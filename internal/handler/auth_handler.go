package handler

import (
	"errors"
	"net/http"

	"farmstand/internal/model"
	"farmstand/internal/service"
	"farmstand/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users      service.UserService
	sessions   session.Store
	cookieName string
	logger     zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService, sessions session.Store, cookieName string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger.With().Str("handler", "auth").Logger(),
	}
}

// formPage is the data passed to the register and login templates.
type formPage struct {
	Error string
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "register.html", formPage{}, h.logger)
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, "register.html", formPage{Error: "Invalid form submission"}, h.logger)
		return
	}

	fullName := r.PostFormValue("full_name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	// Checkbox semantics: present means checked, whatever the value.
	_, isFarmer := r.PostForm["is_farmer"]

	if fullName == "" || email == "" || password == "" {
		render(w, http.StatusBadRequest, "register.html", formPage{Error: "All fields are required"}, h.logger)
		return
	}

	_, err := h.users.Register(r.Context(), email, fullName, password, isFarmer)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			render(w, http.StatusConflict, "register.html", formPage{Error: model.ErrEmailTaken.Message}, h.logger)
			return
		}
		h.logger.Error().Err(err).Msg("registration failed")
		render(w, http.StatusInternalServerError, "register.html", formPage{Error: "Something went wrong, please try again"}, h.logger)
		return
	}

	redirect(w, r, "/login")
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login.html", formPage{}, h.logger)
}

// Login handles POST /login. On success a fresh session ID is stored
// server-side and handed to the browser as an HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, "login.html", formPage{Error: "Invalid form submission"}, h.logger)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			render(w, http.StatusUnauthorized, "login.html", formPage{Error: model.ErrInvalidCredentials.Message}, h.logger)
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		render(w, http.StatusInternalServerError, "login.html", formPage{Error: "Something went wrong, please try again"}, h.logger)
		return
	}

	sid := uuid.NewString()
	sess := session.Session{UserID: user.ID, IsFarmer: user.IsFarmer}
	if err := h.sessions.Set(r.Context(), sid, sess); err != nil {
		h.logger.Error().Err(err).Msg("failed to establish session")
		render(w, http.StatusInternalServerError, "login.html", formPage{Error: "Something went wrong, please try again"}, h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	redirect(w, r, "/")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("failed to delete session")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	redirect(w, r, "/")
}
