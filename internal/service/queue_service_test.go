package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/store"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

// stubCacheRepo keeps cached payloads in a map, ignoring TTLs.
type stubCacheRepo struct {
	data map[string][]byte
	sets int
	gets int
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{data: make(map[string][]byte)}
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	s.gets++
	raw, ok := s.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = raw
	s.sets++
	return nil
}

func (s *stubCacheRepo) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type queueFixture struct {
	queue      *QueueService
	candidates *CandidateService
	store      *store.Store
	cacheRepo  *stubCacheRepo
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	st := store.New()
	cacheRepo := newStubCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	return &queueFixture{
		queue:      NewQueueService(st.Candidates, cache, zap.NewNop(), time.Minute),
		candidates: NewCandidateService(st.Candidates, validator.New(), zap.NewNop(), nil, cache),
		store:      st,
		cacheRepo:  cacheRepo,
	}
}

// seedWaiting creates a registered candidate with a fixed registration
// time, bypassing the service so timestamps are controllable.
func (f *queueFixture) seedWaiting(t *testing.T, name string, round string, registeredAt time.Time) *models.Candidate {
	t.Helper()
	c := &models.Candidate{
		Name:         name,
		Email:        name + "@example.com",
		Position:     "Backend Engineer",
		Status:       models.StatusRegistered,
		CurrentRound: round,
		Source:       models.SourceManual,
		RegisteredAt: registeredAt,
	}
	require.NoError(t, f.store.Candidates.Create(context.Background(), c))
	return c
}

func TestQueuePositionFIFO(t *testing.T) {
	f := newQueueFixture(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	a := f.seedWaiting(t, "a", models.RoundGD, base.Add(100*time.Second))
	b := f.seedWaiting(t, "b", models.RoundGD, base.Add(50*time.Second))

	posB, err := f.queue.Position(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, posB.Position)
	assert.Equal(t, 0, posB.Ahead)
	assert.Equal(t, models.RoundGD, posB.Round)

	posA, err := f.queue.Position(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, posA.Position)
	assert.Equal(t, 1, posA.Ahead)
}

func TestQueuePositionIgnoresOtherRounds(t *testing.T) {
	f := newQueueFixture(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	f.seedWaiting(t, "gd", models.RoundGD, base)
	hr := f.seedWaiting(t, "hr", models.RoundHR, base.Add(time.Second))

	pos, err := f.queue.Position(context.Background(), hr.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Position)
	assert.Equal(t, 0, pos.Ahead)
}

func TestQueuePositionForBusyCandidate(t *testing.T) {
	f := newQueueFixture(t)
	c := f.seedWaiting(t, "busy", models.RoundGD, time.Now().UTC())

	status := models.StatusInProcess
	_, err := f.store.Candidates.Update(context.Background(), c.ID, models.UpdateCandidatePatch{Status: &status})
	require.NoError(t, err)

	_, err = f.queue.Position(context.Background(), c.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}

func TestQueuePositionUnknownCandidate(t *testing.T) {
	f := newQueueFixture(t)

	_, err := f.queue.Position(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestQueueBoardGroupsRounds(t *testing.T) {
	f := newQueueFixture(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	f.seedWaiting(t, "late-gd", models.RoundGD, base.Add(time.Minute))
	f.seedWaiting(t, "early-gd", models.RoundGD, base)
	f.seedWaiting(t, "solo-hr", models.RoundHR, base)
	done := f.seedWaiting(t, "done", models.RoundGD, base)
	status := models.StatusCompleted
	_, err := f.store.Candidates.Update(context.Background(), done.ID, models.UpdateCandidatePatch{Status: &status})
	require.NoError(t, err)

	board, cacheHit, err := f.queue.Board(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)

	require.Len(t, board.Rounds[models.RoundGD], 2)
	assert.Equal(t, "early-gd", board.Rounds[models.RoundGD][0].Name)
	assert.Equal(t, 1, board.Rounds[models.RoundGD][0].Position)
	assert.Equal(t, "late-gd", board.Rounds[models.RoundGD][1].Name)
	assert.Equal(t, 2, board.Rounds[models.RoundGD][1].Position)

	require.Len(t, board.Rounds[models.RoundHR], 1)
	assert.Equal(t, "solo-hr", board.Rounds[models.RoundHR][0].Name)
}

func TestQueueBoardServedFromCache(t *testing.T) {
	f := newQueueFixture(t)
	f.seedWaiting(t, "one", models.RoundGD, time.Now().UTC())

	first, cacheHit, err := f.queue.Board(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.Len(t, first.Rounds[models.RoundGD], 1)
	assert.Equal(t, 1, f.cacheRepo.sets)

	// A direct store write invisible to the cache: the board keeps
	// serving the cached snapshot until invalidation.
	f.seedWaiting(t, "two", models.RoundGD, time.Now().UTC())

	cached, cacheHit, err := f.queue.Board(context.Background())
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Len(t, cached.Rounds[models.RoundGD], 1)
}

func TestQueueBoardInvalidatedByCandidateMutation(t *testing.T) {
	f := newQueueFixture(t)
	registerCandidate(t, f.candidates, "One", "one@example.com")

	first, _, err := f.queue.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Rounds[models.RoundGD], 1)

	// Registering through the service invalidates the cached board.
	registerCandidate(t, f.candidates, "Two", "two@example.com")

	refreshed, cacheHit, err := f.queue.Board(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Len(t, refreshed.Rounds[models.RoundGD], 2)
}
