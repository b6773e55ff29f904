package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type panelRepository interface {
	Create(ctx context.Context, p *models.Panel) error
	FindByID(ctx context.Context, id int64) (*models.Panel, error)
	List(ctx context.Context) ([]models.Panel, error)
	Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error)
}

type panelCandidateRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
	Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error)
}

// PanelService handles panel management and the assign/release flow that
// hands candidates to interviewers.
type PanelService struct {
	repo       panelRepository
	candidates panelCandidateRepository
	validator  *validator.Validate
	logger     *zap.Logger
	events     EventPublisher
	cache      *CacheService
}

// NewPanelService constructs the panel service.
func NewPanelService(repo panelRepository, candidates panelCandidateRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher, cache *CacheService) *PanelService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &PanelService{repo: repo, candidates: candidates, validator: validate, logger: logger, events: events, cache: cache}
}

// Create registers a new panel.
func (s *PanelService) Create(ctx context.Context, req models.CreatePanelRequest) (*models.Panel, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid panel payload")
	}

	panel := models.NewPanel(req)
	if err := s.repo.Create(ctx, panel); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create panel")
	}

	s.events.Publish(models.Event{Type: models.EventPanelCreated, Data: panel})
	return panel, nil
}

// Get returns a panel by id.
func (s *PanelService) Get(ctx context.Context, id int64) (*models.Panel, error) {
	panel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load panel")
	}
	return panel, nil
}

// List returns all panels in creation order.
func (s *PanelService) List(ctx context.Context) ([]models.Panel, error) {
	panels, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list panels")
	}
	return panels, nil
}

// Update applies a partial update to a panel.
func (s *PanelService) Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid panel patch")
	}

	panel, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update panel")
	}

	s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
	return panel, nil
}

// AssignCandidate hands a waiting candidate to a panel. The panel must be
// active and free, and the candidate must not already be with another
// panel. The candidate moves to in_process and inherits the panel's room.
func (s *PanelService) AssignCandidate(ctx context.Context, panelID, candidateID int64) (*models.Panel, *models.Candidate, error) {
	panel, err := s.Get(ctx, panelID)
	if err != nil {
		return nil, nil, err
	}
	if !panel.Active {
		return nil, nil, appErrors.Clone(appErrors.ErrConflict, "panel is not active")
	}
	if panel.CurrentCandidateID != 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrPanelBusy, "")
	}

	candidate, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}
	if candidate.AssignedPanelID != 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrConflict, "candidate is already with a panel")
	}
	if candidate.Status == models.StatusCompleted || candidate.Status == models.StatusRejected {
		return nil, nil, appErrors.Clone(appErrors.ErrConflict, "candidate is no longer in the pipeline")
	}

	panel, err = s.repo.Update(ctx, panelID, models.UpdatePanelPatch{CurrentCandidateID: &candidateID})
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to claim panel")
	}

	candidate, err = s.candidates.Update(ctx, candidateID, models.UpdateCandidatePatch{
		Status:          statusPtr(models.StatusInProcess),
		AssignedPanelID: int64Ptr(panelID),
		RoomNo:          strPtr(panel.RoomNo),
	})
	if err != nil {
		// Release the claim so the panel does not point at a candidate
		// that never moved.
		if _, relErr := s.repo.Update(ctx, panelID, models.UpdatePanelPatch{CurrentCandidateID: int64Ptr(0)}); relErr != nil {
			s.logger.Warn("failed to release panel after assign error", zap.Int64("panelId", panelID), zap.Error(relErr))
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move candidate to panel")
	}

	s.logger.Info("candidate assigned to panel",
		zap.Int64("panelId", panelID),
		zap.Int64("candidateId", candidateID),
		zap.String("round", candidate.CurrentRound))

	s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
	s.events.Publish(models.Event{Type: models.EventCandidateUpdated, Data: candidate})
	s.invalidateBoard(ctx)
	return panel, candidate, nil
}

// ReleaseCandidate returns the panel's current candidate to the queue
// without recording a verdict. Used when an interview is interrupted.
func (s *PanelService) ReleaseCandidate(ctx context.Context, panelID int64) (*models.Panel, *models.Candidate, error) {
	panel, err := s.Get(ctx, panelID)
	if err != nil {
		return nil, nil, err
	}
	if panel.CurrentCandidateID == 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "panel has no candidate in process")
	}

	candidateID := panel.CurrentCandidateID
	candidate, err := s.candidates.Update(ctx, candidateID, models.UpdateCandidatePatch{
		Status:          statusPtr(models.StatusInQueue),
		AssignedPanelID: int64Ptr(0),
		RoomNo:          strPtr(""),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to requeue candidate")
	}

	panel, err = s.repo.Update(ctx, panelID, models.UpdatePanelPatch{CurrentCandidateID: int64Ptr(0)})
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to free panel")
	}

	s.logger.Info("candidate released from panel",
		zap.Int64("panelId", panelID),
		zap.Int64("candidateId", candidateID))

	s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
	if candidate != nil {
		s.events.Publish(models.Event{Type: models.EventCandidateUpdated, Data: candidate})
	}
	s.invalidateBoard(ctx)
	return panel, candidate, nil
}

func (s *PanelService) invalidateBoard(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, queueBoardCacheKey)
}
