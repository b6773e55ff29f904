package models

import "time"

// QueuePosition reports where a candidate stands in their round's queue.
type QueuePosition struct {
	CandidateID  int64     `json:"candidate_id"`
	SerialNumber string    `json:"serial_number"`
	Round        string    `json:"round"`
	Position     int       `json:"position"`
	Ahead        int       `json:"ahead"`
	ComputedAt   time.Time `json:"computed_at"`
}

// QueueEntry is one candidate's slot on the queue board.
type QueueEntry struct {
	CandidateID  int64           `json:"candidate_id"`
	SerialNumber string          `json:"serial_number"`
	Name         string          `json:"name"`
	Status       CandidateStatus `json:"status"`
	Position     int             `json:"position"`
	RegisteredAt time.Time       `json:"registered_at"`
}

// QueueBoard is the per-round queue snapshot shown on the drive floor.
type QueueBoard struct {
	Rounds      map[string][]QueueEntry `json:"rounds"`
	GeneratedAt time.Time               `json:"generated_at"`
}
