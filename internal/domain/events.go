package domain

import "github.com/google/uuid"

type EventKind string

const (
	EventNotification EventKind = "NOTIFICATION"
	EventAudit        EventKind = "AUDIT"
)

// Audience identifies who a notification event is addressed to. The
// dispatching layer resolves it to concrete user ids.
type Audience string

const (
	AudienceOwner  Audience = "OWNER"
	AudienceAdmins Audience = "ADMINS"
)

// Event is a side effect emitted by a deal mutation. The state machine
// returns events instead of touching notification or audit storage itself;
// the service layer dispatches them best-effort after the primary write.
type Event struct {
	ID   string
	Kind EventKind

	// Notification payload
	Audience Audience
	Title    string
	Message  string
	Type     NotificationType

	// Audit payload
	ActorID    *int64
	ActorRole  string
	Action     string
	EntityType string
	EntityID   int64
	Details    string
}

func NewNotificationEvent(audience Audience, title, message string, typ NotificationType) Event {
	return Event{
		ID:       uuid.New().String(),
		Kind:     EventNotification,
		Audience: audience,
		Title:    title,
		Message:  message,
		Type:     typ,
	}
}

func NewAuditEvent(actorID *int64, actorRole, action, entityType string, entityID int64, details string) Event {
	return Event{
		ID:         uuid.New().String(),
		Kind:       EventAudit,
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
}
