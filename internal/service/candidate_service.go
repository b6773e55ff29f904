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

type candidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
	FindBySerial(ctx context.Context, serial string) (*models.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*models.Candidate, error)
	List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, int, error)
	Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error)
}

// CandidateService handles candidate registration and lifecycle use-cases.
type CandidateService struct {
	repo      candidateRepository
	validator *validator.Validate
	logger    *zap.Logger
	events    EventPublisher
	cache     *CacheService
}

// NewCandidateService constructs the candidate service.
func NewCandidateService(repo candidateRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher, cache *CacheService) *CandidateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &CandidateService{repo: repo, validator: validate, logger: logger, events: events, cache: cache}
}

// Register creates a candidate from a registration payload. Source records
// where the registration came from (manual desk entry or the sheets
// webhook); repeated webhook deliveries for the same email are rejected as
// conflicts so ingestion stays idempotent.
func (s *CandidateService) Register(ctx context.Context, req models.RegisterCandidateRequest, source string) (*models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid candidate payload")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "candidate with this email already registered")
	}

	candidate := models.NewCandidate(req, source, time.Now().UTC())
	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create candidate")
	}

	s.logger.Info("candidate registered",
		zap.Int64("candidateId", candidate.ID),
		zap.String("serial", candidate.SerialNumber),
		zap.String("source", candidate.Source))

	s.events.Publish(models.Event{Type: models.EventCandidateCreated, Data: candidate})
	s.invalidateBoard(ctx)
	return candidate, nil
}

// Get returns a candidate by id.
func (s *CandidateService) Get(ctx context.Context, id int64) (*models.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}
	return candidate, nil
}

// GetBySerial returns a candidate by serial number. Serves the QR check-in
// desk, which scans serials rather than ids.
func (s *CandidateService) GetBySerial(ctx context.Context, serial string) (*models.Candidate, error) {
	candidate, err := s.repo.FindBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}
	return candidate, nil
}

// List returns candidates and pagination metadata.
func (s *CandidateService) List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, *models.Pagination, error) {
	candidates, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list candidates")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	return candidates, models.NewPagination(page, size, total), nil
}

// Update applies a partial update to a candidate. Status and round changes
// here are the manual override path; the usual transitions happen through
// feedback submission.
func (s *CandidateService) Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid candidate patch")
	}

	if patch.Email != nil {
		existing, err := s.repo.FindByEmail(ctx, *patch.Email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
		}
		if existing != nil && existing.ID != id {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already used by another candidate")
		}
	}

	if patch.CurrentRound != nil && !models.KnownRound(*patch.CurrentRound) {
		s.logger.Warn("candidate moved to round outside the progression table",
			zap.Int64("candidateId", id),
			zap.String("round", *patch.CurrentRound))
	}

	candidate, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update candidate")
	}

	s.events.Publish(models.Event{Type: models.EventCandidateUpdated, Data: candidate})
	s.invalidateBoard(ctx)
	return candidate, nil
}

func (s *CandidateService) invalidateBoard(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, queueBoardCacheKey)
}
