package models

import "time"

// CandidateFeedback is the candidate's survey of the drive itself,
// submitted after their process completes.
type CandidateFeedback struct {
	ID                  int64     `db:"id" json:"id"`
	CandidateID         int64     `db:"candidate_id" json:"candidate_id"`
	OverallRating       int       `db:"overall_rating" json:"overall_rating"`
	ProcessRating       int       `db:"process_rating" json:"process_rating"`
	CommunicationRating int       `db:"communication_rating" json:"communication_rating"`
	FacilitiesRating    int       `db:"facilities_rating" json:"facilities_rating"`
	Liked               string    `db:"liked" json:"liked"`
	Improve             string    `db:"improve" json:"improve"`
	Anonymous           bool      `db:"anonymous" json:"anonymous"`
	SubmittedAt         time.Time `db:"submitted_at" json:"submitted_at"`
}

// SubmitCandidateFeedbackRequest is the survey payload. Ratings are 1-5.
type SubmitCandidateFeedbackRequest struct {
	CandidateID         int64  `json:"candidate_id" validate:"required,gt=0"`
	OverallRating       int    `json:"overall_rating" validate:"required,min=1,max=5"`
	ProcessRating       int    `json:"process_rating" validate:"required,min=1,max=5"`
	CommunicationRating int    `json:"communication_rating" validate:"required,min=1,max=5"`
	FacilitiesRating    int    `json:"facilities_rating" validate:"required,min=1,max=5"`
	Liked               string `json:"liked"`
	Improve             string `json:"improve"`
	Anonymous           bool   `json:"anonymous"`
}
