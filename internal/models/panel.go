package models

import (
	"time"

	"github.com/lib/pq"
)

// Panel is a named interviewing unit. CurrentCandidateID 0 means the panel
// is free; a panel holds at most one candidate at a time.
type Panel struct {
	ID                 int64          `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	RoomNo             string         `db:"room_no" json:"room_no"`
	Active             bool           `db:"active" json:"active"`
	CurrentCandidateID int64          `db:"current_candidate_id" json:"current_candidate_id"`
	Members            pq.StringArray `db:"members" json:"members"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// NewPanel builds a panel from its create request. Active defaults to true
// when the request leaves it unset.
func NewPanel(req CreatePanelRequest) *Panel {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &Panel{
		Name:    req.Name,
		RoomNo:  req.RoomNo,
		Active:  active,
		Members: append(pq.StringArray{}, req.Members...),
	}
}

// CreatePanelRequest is the payload for registering a panel. Active
// defaults to true when omitted.
type CreatePanelRequest struct {
	Name    string   `json:"name" validate:"required"`
	RoomNo  string   `json:"room_no"`
	Active  *bool    `json:"active"`
	Members []string `json:"members"`
}

// UpdatePanelPatch carries a partial panel update; nil fields are left
// untouched.
type UpdatePanelPatch struct {
	Name               *string   `json:"name" validate:"omitempty,min=1"`
	RoomNo             *string   `json:"room_no"`
	Active             *bool     `json:"active"`
	CurrentCandidateID *int64    `json:"current_candidate_id"`
	Members            *[]string `json:"members"`
}
