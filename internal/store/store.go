// Package store provides the in-memory entity stores used when no database
// is configured. Each store keeps a map keyed by id, an insertion-order
// slice, and a process-lifetime counter: identifiers are monotonically
// increasing and never reused, not even after a delete. Reads and writes
// hand out copies, so callers never share memory with the store.
//
// Lookups report absence with sql.ErrNoRows, matching the sqlx
// repositories, so services map errors the same way against either
// backend. Concurrent updates to one record race last-write-wins on the
// field merge; there is no versioning.
package store

// Store aggregates every entity store behind one handle.
type Store struct {
	Candidates        *CandidateStore
	Panels            *PanelStore
	Rooms             *RoomStore
	Feedback          *FeedbackStore
	CandidateFeedback *CandidateFeedbackStore
	Users             *UserStore
	RolePermissions   *RolePermissionStore
}

// New returns an empty store with all counters at zero.
func New() *Store {
	return &Store{
		Candidates:        NewCandidateStore(),
		Panels:            NewPanelStore(),
		Rooms:             NewRoomStore(),
		Feedback:          NewFeedbackStore(),
		CandidateFeedback: NewCandidateFeedbackStore(),
		Users:             NewUserStore(),
		RolePermissions:   NewRolePermissionStore(),
	}
}
