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

func newSurveyFixture(t *testing.T) (*CandidateFeedbackService, *CandidateService, *capturePublisher) {
	t.Helper()
	st := store.New()
	pub := &capturePublisher{}
	candidates := NewCandidateService(st.Candidates, validator.New(), zap.NewNop(), nil, nil)
	svc := NewCandidateFeedbackService(st.CandidateFeedback, st.Candidates, validator.New(), zap.NewNop(), pub)
	return svc, candidates, pub
}

func TestSurveySubmit(t *testing.T) {
	svc, candidates, pub := newSurveyFixture(t)
	c := registerCandidate(t, candidates, "Asha Rao", "asha@example.com")

	fb, err := svc.Submit(context.Background(), models.SubmitCandidateFeedbackRequest{
		CandidateID:         c.ID,
		OverallRating:       5,
		ProcessRating:       4,
		CommunicationRating: 5,
		FacilitiesRating:    3,
		Liked:               "fast-moving queue",
		Improve:             "more chairs",
	})
	require.NoError(t, err)
	assert.NotZero(t, fb.ID)
	assert.False(t, fb.SubmittedAt.IsZero())
	assert.Equal(t, []models.EventKind{models.EventCandidateFeedbackCreated}, pub.kinds())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSurveySubmitUnknownCandidate(t *testing.T) {
	svc, _, _ := newSurveyFixture(t)

	_, err := svc.Submit(context.Background(), models.SubmitCandidateFeedbackRequest{
		CandidateID:         404,
		OverallRating:       5,
		ProcessRating:       4,
		CommunicationRating: 5,
		FacilitiesRating:    3,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSurveySubmitValidatesRatings(t *testing.T) {
	svc, candidates, _ := newSurveyFixture(t)
	c := registerCandidate(t, candidates, "Asha Rao", "asha@example.com")

	_, err := svc.Submit(context.Background(), models.SubmitCandidateFeedbackRequest{
		CandidateID:         c.ID,
		OverallRating:       6,
		ProcessRating:       4,
		CommunicationRating: 5,
		FacilitiesRating:    3,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
