package models

import "time"

// Decision is the panel's verdict on a candidate after a round.
type Decision string

const (
	DecisionNext   Decision = "next"
	DecisionReject Decision = "reject"
	DecisionHold   Decision = "hold"
)

// Interview rating scale used for technical and communication scores.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingAverage   = "average"
	RatingPoor      = "poor"
)

// Feedback is an interviewer's verdict on a candidate for one round.
type Feedback struct {
	ID                  int64     `db:"id" json:"id"`
	CandidateID         int64     `db:"candidate_id" json:"candidate_id"`
	PanelID             int64     `db:"panel_id" json:"panel_id"`
	Round               string    `db:"round" json:"round"`
	TechnicalRating     string    `db:"technical_rating" json:"technical_rating"`
	CommunicationRating string    `db:"communication_rating" json:"communication_rating"`
	Detail              string    `db:"detail" json:"detail"`
	Decision            Decision  `db:"decision" json:"decision"`
	NextRound           string    `db:"next_round" json:"next_round"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// SubmitFeedbackRequest is the payload for recording a round verdict.
// NextRound is only meaningful for decision "next" and may be any string;
// values outside the progression table are accepted.
type SubmitFeedbackRequest struct {
	CandidateID         int64    `json:"candidate_id" validate:"required,gt=0"`
	PanelID             int64    `json:"panel_id" validate:"required,gt=0"`
	Round               string   `json:"round"`
	TechnicalRating     string   `json:"technical_rating" validate:"omitempty,oneof=excellent good average poor"`
	CommunicationRating string   `json:"communication_rating" validate:"omitempty,oneof=excellent good average poor"`
	Detail              string   `json:"detail"`
	Decision            Decision `json:"decision" validate:"required,oneof=next reject hold"`
	NextRound           string   `json:"next_round"`
}

// FeedbackFilter captures list query options.
type FeedbackFilter struct {
	CandidateID int64
	PanelID     int64
	Round       string
}
