package models

import (
	"fmt"
	"net/url"
	"time"
)

// CandidateStatus tracks where a candidate sits in the drive pipeline.
type CandidateStatus string

const (
	StatusRegistered CandidateStatus = "registered"
	StatusInQueue    CandidateStatus = "in_queue"
	StatusInProcess  CandidateStatus = "in_process"
	StatusCompleted  CandidateStatus = "completed"
	StatusRejected   CandidateStatus = "rejected"
)

// Interview round names. Rounds are extensible strings; these are the ones
// the progression table knows about.
const (
	RoundGD         = "gd"
	RoundScreening  = "screening"
	RoundManager    = "manager"
	RoundHR         = "hr"
	RoundTechnical2 = "technical_round_2"
)

// RoundProgression maps a round to its legal successors. Served to UIs so
// they can offer next-round choices; the server accepts any string.
var RoundProgression = map[string][]string{
	RoundGD:        {RoundScreening},
	RoundScreening: {RoundManager},
	RoundManager:   {RoundHR, RoundTechnical2},
}

// KnownRound reports whether r appears anywhere in the progression table.
func KnownRound(r string) bool {
	switch r {
	case RoundGD, RoundScreening, RoundManager, RoundHR, RoundTechnical2:
		return true
	}
	return false
}

// Candidate registration sources.
const (
	SourceManual = "manual"
	SourceSheets = "sheets"
)

// Candidate represents a walk-in applicant moving through the drive.
// AssignedPanelID 0 means the candidate is not with any panel.
type Candidate struct {
	ID              int64           `db:"id" json:"id"`
	SerialNumber    string          `db:"serial_number" json:"serial_number"`
	Name            string          `db:"name" json:"name"`
	Email           string          `db:"email" json:"email"`
	Phone           string          `db:"phone" json:"phone"`
	Position        string          `db:"position" json:"position"`
	Status          CandidateStatus `db:"status" json:"status"`
	CurrentRound    string          `db:"current_round" json:"current_round"`
	AssignedPanelID int64           `db:"assigned_panel_id" json:"assigned_panel_id"`
	RoomNo          string          `db:"room_no" json:"room_no"`
	QRCodeURL       string          `db:"qr_code_url" json:"qr_code_url"`
	Source          string          `db:"source" json:"source"`
	RegisteredAt    time.Time       `db:"registered_at" json:"registered_at"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// SerialNumber renders the human-readable candidate identifier for the
// given id, zero-padded to at least three digits. Immutable once assigned.
func SerialNumber(id int64) string {
	return fmt.Sprintf("WD-%03d", id)
}

// QRCode returns the templated QR image URL encoding the serial number.
func QRCode(serial string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(serial)
}

// NewCandidate builds a registration-time candidate. Defaults are explicit
// here rather than inferred from absence: status starts at registered,
// round at gd, and the registration timestamp is the supplied now. Serial
// number and QR URL are filled by the store once the id is assigned.
func NewCandidate(req RegisterCandidateRequest, source string, now time.Time) *Candidate {
	if source == "" {
		source = SourceManual
	}
	return &Candidate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Status:       StatusRegistered,
		CurrentRound: RoundGD,
		Source:       source,
		RegisteredAt: now,
	}
}

// RegisterCandidateRequest is the payload for both the manual registration
// endpoint and the sheets ingestion webhook.
type RegisterCandidateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Position string `json:"position" validate:"required"`
}

// UpdateCandidatePatch carries a partial update. Nil fields are left
// untouched; this includes the admin override of status and round.
type UpdateCandidatePatch struct {
	Name            *string          `json:"name" validate:"omitempty,min=1"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Phone           *string          `json:"phone"`
	Position        *string          `json:"position"`
	Status          *CandidateStatus `json:"status" validate:"omitempty,oneof=registered in_queue in_process completed rejected"`
	CurrentRound    *string          `json:"current_round"`
	AssignedPanelID *int64           `json:"assigned_panel_id"`
	RoomNo          *string          `json:"room_no"`
}

// CandidateFilter captures list query options.
type CandidateFilter struct {
	Status   *CandidateStatus
	Round    string
	Search   string
	Page     int
	PageSize int
}
