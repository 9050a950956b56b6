package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-org/pkg/role"
	"github.com/tendant/simple-org/pkg/session"
	"github.com/tendant/simple-org/pkg/token"
	"golang.org/x/exp/slog"
)

// Handle contains dependencies for auth HTTP handlers
type Handle struct {
	sessionManager *session.Manager
	tokenService   *token.Service
	cookieSetter   *token.CookieSetter
}

// NewHandle creates a new auth handler
func NewHandle(
	sessionManager *session.Manager,
	tokenService *token.Service,
	cookieSetter *token.CookieSetter,
) *Handle {
	return &Handle{
		sessionManager: sessionManager,
		tokenService:   tokenService,
		cookieSetter:   cookieSetter,
	}
}

// RegisterRoutes registers all auth routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
	r.Post("/password/reset/init", h.InitPasswordReset)
}

// Login handles POST /api/auth/login
func (h *Handle) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.sessionManager.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.writeAuthResponse(w, snapshot)
}

// Register handles POST /api/auth/register
func (h *Handle) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var userRole role.Role
	if req.Role != "" {
		parsed, err := role.Parse(req.Role)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid role")
			return
		}
		userRole = parsed
	}

	snapshot, err := h.sessionManager.Register(r.Context(), req.Email, req.Password, req.DisplayName, userRole)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.writeAuthResponse(w, snapshot)
}

// Logout handles POST /api/auth/logout
func (h *Handle) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionManager.Logout(r.Context())
	h.cookieSetter.ClearAccessCookie(w)

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "logged out successfully",
		Success: true,
	})
}

// InitPasswordReset handles POST /api/auth/password/reset/init
func (h *Handle) InitPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetInitRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sessionManager.ResetPassword(r.Context(), req.Email); err != nil {
		writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Password reset instructions sent",
		Success: true,
	})
}

// writeAuthResponse issues an access token for the session snapshot and
// sets the auth cookie.
func (h *Handle) writeAuthResponse(w http.ResponseWriter, snapshot session.Session) {
	if !snapshot.SignedIn() {
		writeError(w, http.StatusInternalServerError, "Authentication failed. Please try again")
		return
	}

	tokenValue, err := h.tokenService.GenerateAccessToken(*snapshot.Identity, snapshot.Role)
	if err != nil {
		slog.Error("Failed generating access token", "err", err)
		writeError(w, http.StatusInternalServerError, "Authentication failed. Please try again")
		return
	}

	h.cookieSetter.SetAccessCookie(w, tokenValue)

	writeJSON(w, http.StatusOK, AuthResponse{
		Status: "success",
		User: UserInfo{
			ID:    snapshot.Identity.ID.String(),
			Email: snapshot.Identity.Email,
			Role:  snapshot.Role.String(),
		},
		AccessToken: tokenValue.Token,
	})
}
