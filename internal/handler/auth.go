package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dealerdrive-api/internal/middleware"
	"dealerdrive-api/internal/service"
	"dealerdrive-api/pkg/apierror"
	"dealerdrive-api/pkg/response"
)

// AuthHandler exposes the admin session gate over HTTP.
type AuthHandler struct {
	sessions *service.SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	ExpiresIn int       `json:"expiresIn"` // seconds
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.Username == "" || req.Password == "" {
		response.Error(w, apierror.BadRequest("username and password are required"))
		return
	}

	token, session, err := h.sessions.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Error(w, apierror.Unauthorized("Invalid username or password"))
		return
	}
	if err != nil {
		response.Error(w, apierror.InternalError("Failed to log in"))
		return
	}

	response.OK(w, LoginResponse{
		Token:     token,
		Username:  session.Username,
		LoginTime: session.LoginTime,
		ExpiresIn: int(h.sessions.TTL().Seconds()),
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		if err := h.sessions.Logout(r.Context(), token); err != nil {
			response.Error(w, apierror.InternalError("Failed to log out"))
			return
		}
	}
	response.Success(w)
}

// SessionStatus represents the response of a session check.
type SessionStatus struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username,omitempty"`
	LoginTime     time.Time `json:"loginTime,omitempty"`
}

// Session handles GET /api/auth/session. An expired or missing session is
// reported as unauthenticated, not as an error.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Validate(r.Context(), middleware.SessionToken(r))
	if err != nil {
		response.OK(w, SessionStatus{Authenticated: false})
		return
	}
	response.OK(w, SessionStatus{
		Authenticated: true,
		Username:      session.Username,
		LoginTime:     session.LoginTime,
	})
}
