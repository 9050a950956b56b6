package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/directory"
	"github.com/tendant/simple-org/pkg/role"
	"github.com/tendant/simple-org/pkg/token"
	"golang.org/x/exp/slog"
)

// Handle contains dependencies for user directory HTTP handlers
type Handle struct {
	directoryService *directory.Service
}

// NewHandle creates a new directory handler
func NewHandle(directoryService *directory.Service) *Handle {
	return &Handle{
		directoryService: directoryService,
	}
}

// RegisterRoutes registers all user directory routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetUsers)
	r.Post("/", h.PostUsers)
	r.Get("/{id}", h.GetUser)
	r.Put("/{id}", h.PutUser)
	r.Post("/{id}/deactivate", h.DeactivateUser)
	r.Post("/{id}/reactivate", h.ReactivateUser)
}

// actorFromRequest builds the audit actor from the verified token claims
func actorFromRequest(r *http.Request) audit.Actor {
	actor := audit.Actor{Email: token.EmailFromContext(r)}
	if sub := token.SubjectFromContext(r); sub != "" {
		if id, err := uuid.Parse(sub); err == nil {
			actor.ID = id
		}
	}
	if actor.Email == "" {
		return audit.SystemActor
	}
	return actor
}

// Get a list of users
// (GET /users)
func (h *Handle) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directoryService.GetAllUsers(r.Context())
	if err != nil {
		slog.Error("Failed getting users", "err", err)
		writeServiceError(w, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, response)
}

// Create a new user
// (POST /users)
func (h *Handle) PostUsers(w http.ResponseWriter, r *http.Request) {
	var request CreateUserRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	var params directory.CreateUserParams
	copier.Copy(&params, &request)
	if request.Role != "" {
		parsed, err := role.Parse(request.Role)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		params.Role = parsed
	}

	user, err := h.directoryService.CreateUser(r.Context(), actorFromRequest(r), params)
	if err != nil {
		slog.Error("Failed creating user", "err", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// Get user details by id
// (GET /users/{id})
func (h *Handle) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.directoryService.GetUserByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Update user details by id
// (PUT /users/{id})
func (h *Handle) PutUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var request UpdateUserRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := directory.UpdateUserParams{
		DisplayName: request.DisplayName,
		Active:      request.Active,
	}
	if request.Role != nil {
		parsed := role.Role(*request.Role)
		params.Role = &parsed
	}

	user, err := h.directoryService.UpdateUser(r.Context(), actorFromRequest(r), id, params)
	if err != nil {
		slog.Error("Failed updating user", "err", err, "id", id)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Deactivate user by id
// (POST /users/{id}/deactivate)
func (h *Handle) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.directoryService.DeactivateUser(r.Context(), actorFromRequest(r), id); err != nil {
		slog.Error("Failed deactivating user", "err", err, "id", id)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deactivated"})
}

// Reactivate user by id
// (POST /users/{id}/reactivate)
func (h *Handle) ReactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.directoryService.ReactivateUser(r.Context(), actorFromRequest(r), id); err != nil {
		slog.Error("Failed reactivating user", "err", err, "id", id)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User reactivated"})
}
