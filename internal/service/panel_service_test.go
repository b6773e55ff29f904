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

type panelFixture struct {
	panels     *PanelService
	candidates *CandidateService
	store      *store.Store
	pub        *capturePublisher
}

func newPanelFixture(t *testing.T) *panelFixture {
	t.Helper()
	st := store.New()
	pub := &capturePublisher{}
	return &panelFixture{
		panels:     NewPanelService(st.Panels, st.Candidates, validator.New(), zap.NewNop(), pub, nil),
		candidates: NewCandidateService(st.Candidates, validator.New(), zap.NewNop(), pub, nil),
		store:      st,
		pub:        pub,
	}
}

func (f *panelFixture) createPanel(t *testing.T, name, roomNo string) *models.Panel {
	t.Helper()
	p, err := f.panels.Create(context.Background(), models.CreatePanelRequest{
		Name:    name,
		RoomNo:  roomNo,
		Members: []string{"interviewer-a", "interviewer-b"},
	})
	require.NoError(t, err)
	return p
}

func TestPanelCreateDefaultsActive(t *testing.T) {
	f := newPanelFixture(t)

	p := f.createPanel(t, "Panel A", "R-101")
	assert.True(t, p.Active)
	assert.Equal(t, int64(0), p.CurrentCandidateID)
	assert.Equal(t, []models.EventKind{models.EventPanelCreated}, f.pub.kinds())
}

func TestPanelAssignCandidate(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")
	f.pub.events = nil

	gotPanel, gotCandidate, err := f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.NoError(t, err)

	assert.Equal(t, candidate.ID, gotPanel.CurrentCandidateID)
	assert.Equal(t, models.StatusInProcess, gotCandidate.Status)
	assert.Equal(t, panel.ID, gotCandidate.AssignedPanelID)
	assert.Equal(t, "R-101", gotCandidate.RoomNo)
	assert.Equal(t, []models.EventKind{models.EventPanelUpdated, models.EventCandidateUpdated}, f.pub.kinds())
}

func TestPanelAssignBusyPanel(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")
	first := registerCandidate(t, f.candidates, "First", "first@example.com")
	second := registerCandidate(t, f.candidates, "Second", "second@example.com")

	_, _, err := f.panels.AssignCandidate(context.Background(), panel.ID, first.ID)
	require.NoError(t, err)

	_, _, err = f.panels.AssignCandidate(context.Background(), panel.ID, second.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPanelBusy.Code, appErrors.FromError(err).Code)

	// The second candidate must be untouched by the failed assignment.
	unchanged, getErr := f.candidates.Get(context.Background(), second.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusRegistered, unchanged.Status)
	assert.Equal(t, int64(0), unchanged.AssignedPanelID)
}

func TestPanelAssignInactivePanel(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")

	inactive := false
	_, err := f.panels.Update(context.Background(), panel.ID, models.UpdatePanelPatch{Active: &inactive})
	require.NoError(t, err)

	_, _, err = f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestPanelAssignCandidateAlreadyTaken(t *testing.T) {
	f := newPanelFixture(t)
	first := f.createPanel(t, "Panel A", "R-101")
	second := f.createPanel(t, "Panel B", "R-102")
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")

	_, _, err := f.panels.AssignCandidate(context.Background(), first.ID, candidate.ID)
	require.NoError(t, err)

	_, _, err = f.panels.AssignCandidate(context.Background(), second.ID, candidate.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestPanelAssignFinishedCandidate(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")

	status := models.StatusRejected
	_, err := f.store.Candidates.Update(context.Background(), candidate.ID, models.UpdateCandidatePatch{Status: &status})
	require.NoError(t, err)

	_, _, err = f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestPanelAssignMissingCandidate(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")

	_, _, err := f.panels.AssignCandidate(context.Background(), panel.ID, 404)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	// A failed assignment must not leave the panel claimed.
	reloaded, getErr := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, getErr)
	assert.Equal(t, int64(0), reloaded.CurrentCandidateID)
}

func TestPanelReleaseCandidate(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")
	candidate := registerCandidate(t, f.candidates, "Asha Rao", "asha@example.com")

	_, _, err := f.panels.AssignCandidate(context.Background(), panel.ID, candidate.ID)
	require.NoError(t, err)
	f.pub.events = nil

	gotPanel, gotCandidate, err := f.panels.ReleaseCandidate(context.Background(), panel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), gotPanel.CurrentCandidateID)
	assert.Equal(t, models.StatusInQueue, gotCandidate.Status)
	assert.Equal(t, int64(0), gotCandidate.AssignedPanelID)
	assert.Empty(t, gotCandidate.RoomNo)
	assert.Equal(t, []models.EventKind{models.EventPanelUpdated, models.EventCandidateUpdated}, f.pub.kinds())
}

func TestPanelReleaseWithoutCandidate(t *testing.T) {
	f := newPanelFixture(t)
	panel := f.createPanel(t, "Panel A", "R-101")

	_, _, err := f.panels.ReleaseCandidate(context.Background(), panel.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}
