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

type feedbackRepository interface {
	Create(ctx context.Context, f *models.Feedback) error
	List(ctx context.Context, filter models.FeedbackFilter) ([]models.Feedback, error)
}

type feedbackCandidateRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
	Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error)
}

type feedbackPanelRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Panel, error)
	Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error)
}

// FeedbackService records interview verdicts and drives the resulting
// candidate transitions.
type FeedbackService struct {
	repo       feedbackRepository
	candidates feedbackCandidateRepository
	panels     feedbackPanelRepository
	validator  *validator.Validate
	logger     *zap.Logger
	events     EventPublisher
	cache      *CacheService
}

// NewFeedbackService constructs the feedback service.
func NewFeedbackService(repo feedbackRepository, candidates feedbackCandidateRepository, panels feedbackPanelRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher, cache *CacheService) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &FeedbackService{repo: repo, candidates: candidates, panels: panels, validator: validate, logger: logger, events: events, cache: cache}
}

// Submit records a verdict and moves the candidate accordingly: back into
// the queue for the next round, requeued for the same round on hold, or
// out of the pipeline on reject. The candidate leaves the panel either
// way, so the panel frees up for its next interview.
func (s *FeedbackService) Submit(ctx context.Context, req models.SubmitFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}

	candidate, err := s.candidates.FindByID(ctx, req.CandidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}

	panel, err := s.panels.FindByID(ctx, req.PanelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load panel")
	}

	round := req.Round
	if round == "" {
		round = candidate.CurrentRound
	}
	if req.Decision == models.DecisionNext && req.NextRound != "" && !models.KnownRound(req.NextRound) {
		s.logger.Warn("feedback names a round outside the progression table",
			zap.Int64("candidateId", candidate.ID),
			zap.String("nextRound", req.NextRound))
	}

	feedback := &models.Feedback{
		CandidateID:         req.CandidateID,
		PanelID:             req.PanelID,
		Round:               round,
		TechnicalRating:     req.TechnicalRating,
		CommunicationRating: req.CommunicationRating,
		Detail:              req.Detail,
		Decision:            req.Decision,
		NextRound:           req.NextRound,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record feedback")
	}

	transition := ApplyDecision(req.Decision, candidate.CurrentRound, req.NextRound)
	candidate, err = s.candidates.Update(ctx, candidate.ID, models.UpdateCandidatePatch{
		Status:          statusPtr(transition.Status),
		CurrentRound:    strPtr(transition.Round),
		AssignedPanelID: int64Ptr(0),
		RoomNo:          strPtr(""),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transition candidate")
	}

	if panel.CurrentCandidateID == req.CandidateID {
		panel, err = s.panels.Update(ctx, panel.ID, models.UpdatePanelPatch{CurrentCandidateID: int64Ptr(0)})
		if err != nil {
			s.logger.Warn("failed to free panel after feedback", zap.Int64("panelId", req.PanelID), zap.Error(err))
		} else {
			s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
		}
	}

	s.logger.Info("feedback recorded",
		zap.Int64("candidateId", candidate.ID),
		zap.Int64("panelId", req.PanelID),
		zap.String("decision", string(req.Decision)),
		zap.String("round", round),
		zap.String("newStatus", string(candidate.Status)))

	s.events.Publish(models.Event{Type: models.EventFeedbackCreated, Data: feedback})
	s.events.Publish(models.Event{Type: models.EventCandidateUpdated, Data: candidate})
	s.invalidateBoard(ctx)
	return feedback, nil
}

// List returns feedback matching the filter, newest last.
func (s *FeedbackService) List(ctx context.Context, filter models.FeedbackFilter) ([]models.Feedback, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	return items, nil
}

// ListForCandidate returns every verdict recorded for one candidate.
func (s *FeedbackService) ListForCandidate(ctx context.Context, candidateID int64) ([]models.Feedback, error) {
	return s.List(ctx, models.FeedbackFilter{CandidateID: candidateID})
}

func (s *FeedbackService) invalidateBoard(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, queueBoardCacheKey)
}
