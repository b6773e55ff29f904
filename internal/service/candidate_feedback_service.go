package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type candidateFeedbackRepository interface {
	Create(ctx context.Context, f *models.CandidateFeedback) error
	List(ctx context.Context) ([]models.CandidateFeedback, error)
}

type surveyCandidateRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
}

// CandidateFeedbackService records the exit survey candidates fill in
// about the drive itself.
type CandidateFeedbackService struct {
	repo       candidateFeedbackRepository
	candidates surveyCandidateRepository
	validator  *validator.Validate
	logger     *zap.Logger
	events     EventPublisher
}

// NewCandidateFeedbackService constructs the candidate feedback service.
func NewCandidateFeedbackService(repo candidateFeedbackRepository, candidates surveyCandidateRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher) *CandidateFeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &CandidateFeedbackService{repo: repo, candidates: candidates, validator: validate, logger: logger, events: events}
}

// Submit stores a survey response. The candidate must exist; there is no
// one-response-per-candidate constraint since kiosk submissions sometimes
// get retried.
func (s *CandidateFeedbackService) Submit(ctx context.Context, req models.SubmitCandidateFeedbackRequest) (*models.CandidateFeedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid survey payload")
	}

	if _, err := s.candidates.FindByID(ctx, req.CandidateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}

	feedback := &models.CandidateFeedback{
		CandidateID:         req.CandidateID,
		OverallRating:       req.OverallRating,
		ProcessRating:       req.ProcessRating,
		CommunicationRating: req.CommunicationRating,
		FacilitiesRating:    req.FacilitiesRating,
		Liked:               req.Liked,
		Improve:             req.Improve,
		Anonymous:           req.Anonymous,
		SubmittedAt:         time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record survey")
	}

	s.logger.Info("candidate survey recorded",
		zap.Int64("candidateId", req.CandidateID),
		zap.Int("overall", req.OverallRating),
		zap.Bool("anonymous", req.Anonymous))

	s.events.Publish(models.Event{Type: models.EventCandidateFeedbackCreated, Data: feedback})
	return feedback, nil
}

// List returns every survey response in submission order.
func (s *CandidateFeedbackService) List(ctx context.Context) ([]models.CandidateFeedback, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list surveys")
	}
	return items, nil
}
