package models

// EventKind names an entity-change broadcast.
type EventKind string

const (
	EventCandidateCreated         EventKind = "CANDIDATE_CREATED"
	EventCandidateUpdated         EventKind = "CANDIDATE_UPDATED"
	EventPanelCreated             EventKind = "PANEL_CREATED"
	EventPanelUpdated             EventKind = "PANEL_UPDATED"
	EventRoomCreated              EventKind = "ROOM_CREATED"
	EventRoomUpdated              EventKind = "ROOM_UPDATED"
	EventFeedbackCreated          EventKind = "FEEDBACK_CREATED"
	EventCandidateFeedbackCreated EventKind = "CANDIDATE_FEEDBACK_CREATED"
	EventUserCreated              EventKind = "USER_CREATED"
	EventUserUpdated              EventKind = "USER_UPDATED"
	EventUserDeleted              EventKind = "USER_DELETED"
	EventRolePermissionCreated    EventKind = "ROLE_PERMISSION_CREATED"
	EventRolePermissionUpdated    EventKind = "ROLE_PERMISSION_UPDATED"
	EventRolePermissionDeleted    EventKind = "ROLE_PERMISSION_DELETED"
)

// Event is the envelope pushed to every realtime client on any entity
// mutation. Data carries the changed entity, or an id-only payload for
// deletions. Clients treat it as a cache-invalidation signal.
type Event struct {
	Type EventKind   `json:"type"`
	Data interface{} `json:"data"`
}

// DeletedPayload is the id-only event body for delete broadcasts.
type DeletedPayload struct {
	ID int64 `json:"id"`
}
