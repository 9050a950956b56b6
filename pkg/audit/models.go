package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only audit record. Entries are never mutated or
// deleted once written.
type Entry struct {
	ID         uuid.UUID              `json:"id"`
	ActorID    uuid.UUID              `json:"actor_id"`
	ActorEmail string                 `json:"actor_email"`
	Action     string                 `json:"action"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

// Actor identifies who performed an administrative action. A zero ID
// means the action was not tied to an authenticated identity.
type Actor struct {
	ID    uuid.UUID
	Email string
}

// SystemActor is used when no authenticated actor is associated with an
// action (startup seeding, scheduled maintenance).
var SystemActor = Actor{Email: "System"}

// Common audit actions recorded by the directory service.
const (
	ActionUserCreated     = "user.created"
	ActionUserUpdated     = "user.updated"
	ActionUserDeactivated = "user.deactivated"
	ActionUserReactivated = "user.reactivated"
)
