package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/store"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type feedbackFixture struct {
	feedback   *FeedbackService
	panels     *PanelService
	candidates *CandidateService
	store      *store.Store
	pub        *capturePublisher
}

func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()
	st := store.New()
	pub := &capturePublisher{}
	return &feedbackFixture{
		feedback:   NewFeedbackService(st.Feedback, st.Candidates, st.Panels, validator.New(), zap.NewNop(), pub, nil),
		panels:     NewPanelService(st.Panels, st.Candidates, validator.New(), zap.NewNop(), pub, nil),
		candidates: NewCandidateService(st.Candidates, validator.New(), zap.NewNop(), pub, nil),
		store:      st,
		pub:        pub,
	}
}

// inProcessCandidate registers a candidate and walks them onto a panel.
func (f *feedbackFixture) inProcessCandidate(t *testing.T) (*models.Candidate, *models.Panel) {
	t.Helper()
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A", RoomNo: "R-101"})
	require.NoError(t, err)
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")
	_, _, err = f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.NoError(t, err)
	f.pub.events = nil
	return candidate, panel
}

func TestFeedbackNextAdvancesCandidate(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	fb, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID:         candidate.ID,
		PanelID:             panel.ID,
		TechnicalRating:     models.RatingGood,
		CommunicationRating: models.RatingExcellent,
		Detail:              "solid fundamentals",
		Decision:            models.DecisionNext,
		NextRound:           models.RoundScreening,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoundGD, fb.Round)

	moved, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInQueue, moved.Status)
	assert.Equal(t, models.RoundScreening, moved.CurrentRound)
	assert.Equal(t, int64(0), moved.AssignedPanelID)
	assert.Empty(t, moved.RoomNo)

	freed, err := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), freed.CurrentCandidateID)

	assert.Equal(t, []models.EventKind{models.EventPanelUpdated, models.EventFeedbackCreated, models.EventCandidateUpdated}, f.pub.kinds())
}

func TestFeedbackNextWithoutRoundKeepsRound(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionNext,
	})
	require.NoError(t, err)

	moved, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInQueue, moved.Status)
	assert.Equal(t, models.RoundGD, moved.CurrentRound)
}

func TestFeedbackRejectTerminates(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionReject,
		NextRound:   models.RoundScreening,
	})
	require.NoError(t, err)

	rejected, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, models.RoundGD, rejected.CurrentRound)
	assert.Equal(t, int64(0), rejected.AssignedPanelID)
}

func TestFeedbackHoldRequeuesSameRound(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionHold,
	})
	require.NoError(t, err)

	held, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInQueue, held.Status)
	assert.Equal(t, models.RoundGD, held.CurrentRound)
}

func TestFeedbackAcceptsUnknownNextRound(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionNext,
		NextRound:   "founder_chat",
	})
	require.NoError(t, err)

	moved, err := f.candidates.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, "founder_chat", moved.CurrentRound)
}

func TestFeedbackUnknownCandidate(t *testing.T) {
	f := newFeedbackFixture(t)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)

	_, err = f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: 404,
		PanelID:     panel.ID,
		Decision:    models.DecisionNext,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestFeedbackValidatesDecision(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    "promote",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestFeedbackListFilters(t *testing.T) {
	f := newFeedbackFixture(t)
	candidate, panel := f.inProcessCandidate(t)

	_, err := f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionNext,
		NextRound:   models.RoundScreening,
	})
	require.NoError(t, err)

	// Second interview for the same candidate on the next round.
	_, _, err = f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.NoError(t, err)
	_, err = f.feedback.Submit(context.Background(), models.SubmitFeedbackRequest{
		CandidateID: candidate.ID,
		PanelID:     panel.ID,
		Decision:    models.DecisionReject,
	})
	require.NoError(t, err)

	all, err := f.feedback.ListForCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.RoundGD, all[0].Round)
	assert.Equal(t, models.RoundScreening, all[1].Round)

	screeningOnly, err := f.feedback.List(context.Background(), models.FeedbackFilter{Round: models.RoundScreening})
	require.NoError(t, err)
	require.Len(t, screeningOnly, 1)
	assert.Equal(t, models.DecisionReject, screeningOnly[0].Decision)
}
