package models

import (
	"time"

	"github.com/lib/pq"
)

// RoomType categorizes what a room is used for.
type RoomType string

const (
	RoomTechnical RoomType = "Technical"
	RoomHR        RoomType = "HR"
	RoomManager   RoomType = "Manager"
	RoomGeneral   RoomType = "General"
)

// Room is a physical interview room. Occupied is derived state: true iff
// AssignedPanelIDs is non-empty.
type Room struct {
	ID               int64         `db:"id" json:"id"`
	RoomNo           string        `db:"room_no" json:"room_no"`
	Capacity         int           `db:"capacity" json:"capacity"`
	Floor            string        `db:"floor" json:"floor"`
	Type             RoomType      `db:"type" json:"type"`
	Occupied         bool          `db:"occupied" json:"occupied"`
	AssignedPanelIDs pq.Int64Array `db:"assigned_panel_ids" json:"assigned_panel_ids"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}

// HasPanel reports whether the given panel id is in the room's assignment
// list.
func (r *Room) HasPanel(panelID int64) bool {
	for _, id := range r.AssignedPanelIDs {
		if id == panelID {
			return true
		}
	}
	return false
}

// NewRoom builds a room from its create request. Type defaults to General,
// capacity to 1, and a fresh room starts unoccupied with no panels.
func NewRoom(req CreateRoomRequest) *Room {
	roomType := req.Type
	if roomType == "" {
		roomType = RoomGeneral
	}
	capacity := req.Capacity
	if capacity <= 0 {
		capacity = 1
	}
	return &Room{
		RoomNo:           req.RoomNo,
		Capacity:         capacity,
		Floor:            req.Floor,
		Type:             roomType,
		Occupied:         false,
		AssignedPanelIDs: pq.Int64Array{},
	}
}

// CreateRoomRequest is the payload for registering a room.
type CreateRoomRequest struct {
	RoomNo   string   `json:"room_no" validate:"required"`
	Capacity int      `json:"capacity" validate:"omitempty,min=1"`
	Floor    string   `json:"floor"`
	Type     RoomType `json:"type" validate:"omitempty,oneof=Technical HR Manager General"`
}

// UpdateRoomPatch carries a partial room update; nil fields are left
// untouched. Assignment lists change only through the assign/remove panel
// operations.
type UpdateRoomPatch struct {
	RoomNo   *string   `json:"room_no" validate:"omitempty,min=1"`
	Capacity *int      `json:"capacity" validate:"omitempty,min=1"`
	Floor    *string   `json:"floor"`
	Type     *RoomType `json:"type" validate:"omitempty,oneof=Technical HR Manager General"`
}
