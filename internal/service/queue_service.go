package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

// queueBoardCacheKey holds the rendered queue board. Any candidate
// mutation invalidates it.
const queueBoardCacheKey = "queue:board"

type queueCandidateRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
	List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, int, error)
}

// QueueService computes queue positions and the per-round board shown on
// the drive floor.
type QueueService struct {
	candidates queueCandidateRepository
	cache      *CacheService
	logger     *zap.Logger
	boardTTL   time.Duration
}

// NewQueueService constructs the queue service.
func NewQueueService(candidates queueCandidateRepository, cache *CacheService, logger *zap.Logger, boardTTL time.Duration) *QueueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if boardTTL <= 0 {
		boardTTL = 5 * time.Second
	}
	return &QueueService{candidates: candidates, cache: cache, logger: logger, boardTTL: boardTTL}
}

// Position reports where the candidate stands in their round's queue:
// 1-based position, with "ahead" counting the candidates before them.
func (s *QueueService) Position(ctx context.Context, candidateID int64) (*models.QueuePosition, error) {
	candidate, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}
	if !queueEligible(*candidate, candidate.CurrentRound) {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "candidate is not waiting in a queue")
	}

	all, _, err := s.candidates.List(ctx, models.CandidateFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to scan candidates")
	}

	waiting := rankQueue(all, candidate.CurrentRound)
	for i := range waiting {
		if waiting[i].ID == candidate.ID {
			return &models.QueuePosition{
				CandidateID:  candidate.ID,
				SerialNumber: candidate.SerialNumber,
				Round:        candidate.CurrentRound,
				Position:     i + 1,
				Ahead:        i,
				ComputedAt:   time.Now().UTC(),
			}, nil
		}
	}

	// Eligible by status but missing from the scan means the candidate
	// changed under us; surface it as a retryable conflict.
	return nil, appErrors.Clone(appErrors.ErrConflict, "queue changed while computing position")
}

// Board renders every round's waiting queue. Results are cached briefly
// since the floor displays poll this endpoint in lockstep; the returned
// bool reports whether this call was served from cache.
func (s *QueueService) Board(ctx context.Context) (*models.QueueBoard, bool, error) {
	var cached models.QueueBoard
	if hit, err := s.cache.Get(ctx, queueBoardCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	all, _, err := s.candidates.List(ctx, models.CandidateFilter{})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to scan candidates")
	}

	rounds := make(map[string][]models.QueueEntry)
	seen := make(map[string]bool)
	for _, c := range all {
		round := c.CurrentRound
		if seen[round] {
			continue
		}
		seen[round] = true
		waiting := rankQueue(all, round)
		if len(waiting) == 0 {
			continue
		}
		entries := make([]models.QueueEntry, 0, len(waiting))
		for i, w := range waiting {
			entries = append(entries, models.QueueEntry{
				CandidateID:  w.ID,
				SerialNumber: w.SerialNumber,
				Name:         w.Name,
				Status:       w.Status,
				Position:     i + 1,
				RegisteredAt: w.RegisteredAt,
			})
		}
		rounds[round] = entries
	}

	board := &models.QueueBoard{Rounds: rounds, GeneratedAt: time.Now().UTC()}
	if err := s.cache.Set(ctx, queueBoardCacheKey, board, s.boardTTL); err != nil {
		s.logger.Warn("failed to cache queue board", zap.Error(err))
	}
	return board, false, nil
}
