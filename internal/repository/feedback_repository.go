package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

const feedbackColumns = `id, candidate_id, panel_id, round, technical_rating, communication_rating, detail, decision, next_round, created_at`

// FeedbackRepository provides database access for interviewer feedback.
// Feedback is append-only.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a feedback record and fills the assigned id.
func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	f.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO feedback (candidate_id, panel_id, round, technical_rating, communication_rating, detail, decision, next_round, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.GetContext(ctx, &f.ID, query,
		f.CandidateID, f.PanelID, f.Round, f.TechnicalRating, f.CommunicationRating,
		f.Detail, f.Decision, f.NextRound, f.CreatedAt,
	); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// List returns feedback matching the filter in insertion order.
func (r *FeedbackRepository) List(ctx context.Context, filter models.FeedbackFilter) ([]models.Feedback, error) {
	baseQuery := fmt.Sprintf(`SELECT %s FROM feedback WHERE 1=1`, feedbackColumns)
	var conditions []string
	var args []interface{}

	if filter.CandidateID != 0 {
		conditions = append(conditions, fmt.Sprintf("candidate_id = $%d", len(args)+1))
		args = append(args, filter.CandidateID)
	}
	if filter.PanelID != 0 {
		conditions = append(conditions, fmt.Sprintf("panel_id = $%d", len(args)+1))
		args = append(args, filter.PanelID)
	}
	if filter.Round != "" {
		conditions = append(conditions, fmt.Sprintf("round = $%d", len(args)+1))
		args = append(args, filter.Round)
	}
	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY id ASC"

	var feedback []models.Feedback
	if err := r.db.SelectContext(ctx, &feedback, baseQuery, args...); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedback, nil
}

// CandidateFeedbackRepository provides database access for candidate
// surveys. Append-only.
type CandidateFeedbackRepository struct {
	db *sqlx.DB
}

// NewCandidateFeedbackRepository creates a new instance of
// CandidateFeedbackRepository.
func NewCandidateFeedbackRepository(db *sqlx.DB) *CandidateFeedbackRepository {
	return &CandidateFeedbackRepository{db: db}
}

// Create inserts a survey record and fills the assigned id.
func (r *CandidateFeedbackRepository) Create(ctx context.Context, f *models.CandidateFeedback) error {
	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = time.Now().UTC()
	}

	const query = `INSERT INTO candidate_feedback (candidate_id, overall_rating, process_rating, communication_rating, facilities_rating, liked, improve, anonymous, submitted_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.GetContext(ctx, &f.ID, query,
		f.CandidateID, f.OverallRating, f.ProcessRating, f.CommunicationRating,
		f.FacilitiesRating, f.Liked, f.Improve, f.Anonymous, f.SubmittedAt,
	); err != nil {
		return fmt.Errorf("create candidate feedback: %w", err)
	}
	return nil
}

// List returns all surveys in insertion order.
func (r *CandidateFeedbackRepository) List(ctx context.Context) ([]models.CandidateFeedback, error) {
	const query = `SELECT id, candidate_id, overall_rating, process_rating, communication_rating, facilities_rating, liked, improve, anonymous, submitted_at FROM candidate_feedback ORDER BY id ASC`
	var out []models.CandidateFeedback
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list candidate feedback: %w", err)
	}
	return out, nil
}
