package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

func newCandidate(name, email string) *models.Candidate {
	return models.NewCandidate(models.RegisterCandidateRequest{
		Name:     name,
		Email:    email,
		Phone:    "9999999999",
		Position: "Backend Engineer",
	}, models.SourceManual, time.Now().UTC())
}

func TestCandidateStoreCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	a := newCandidate("Asha", "asha@example.com")
	b := newCandidate("Bilal", "bilal@example.com")
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, "WD-001", a.SerialNumber)
	assert.Equal(t, "WD-002", b.SerialNumber)
	assert.Contains(t, a.QRCodeURL, "WD-001")
	assert.Equal(t, models.StatusRegistered, a.Status)
	assert.Equal(t, models.RoundGD, a.CurrentRound)
}

func TestCandidateStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	names := []string{"one", "two", "three", "four"}
	for _, n := range names {
		require.NoError(t, s.Create(ctx, newCandidate(n, n+"@example.com")))
	}

	got, total, err := s.List(ctx, models.CandidateFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	for i, c := range got {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestCandidateStoreListFilters(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	a := newCandidate("Asha", "asha@example.com")
	b := newCandidate("Bilal", "bilal@example.com")
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))

	rejected := models.StatusRejected
	_, err := s.Update(ctx, b.ID, models.UpdateCandidatePatch{Status: &rejected})
	require.NoError(t, err)

	got, total, err := s.List(ctx, models.CandidateFilter{Status: &rejected})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Bilal", got[0].Name)

	got, total, err = s.List(ctx, models.CandidateFilter{Search: "asha"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Asha", got[0].Name)
}

func TestCandidateStoreListPaging(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Create(ctx, newCandidate("c", "c@example.com")))
	}

	got, total, err := s.List(ctx, models.CandidateFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	got, total, err = s.List(ctx, models.CandidateFilter{Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, got)
}

func TestCandidateStorePartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	c := newCandidate("Asha", "asha@example.com")
	require.NoError(t, s.Create(ctx, c))

	inQueue := models.StatusInQueue
	updated, err := s.Update(ctx, c.ID, models.UpdateCandidatePatch{Status: &inQueue})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInQueue, updated.Status)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, models.RoundGD, updated.CurrentRound)
	assert.Equal(t, c.SerialNumber, updated.SerialNumber)
}

func TestCandidateStoreNoopUpdateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	c := newCandidate("Asha", "asha@example.com")
	require.NoError(t, s.Create(ctx, c))

	first, err := s.Update(ctx, c.ID, models.UpdateCandidatePatch{})
	require.NoError(t, err)
	second, err := s.Update(ctx, c.ID, models.UpdateCandidatePatch{})
	require.NoError(t, err)

	first.UpdatedAt = second.UpdatedAt
	assert.Equal(t, first, second)
}

func TestCandidateStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	_, err := s.FindByID(ctx, 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.FindBySerial(ctx, "WD-042")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = s.Update(ctx, 42, models.UpdateCandidatePatch{})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCandidateStoreFindBySecondaryKeys(t *testing.T) {
	ctx := context.Background()
	s := NewCandidateStore()

	c := newCandidate("Asha", "Asha@Example.com")
	require.NoError(t, s.Create(ctx, c))

	bySerial, err := s.FindBySerial(ctx, "WD-001")
	require.NoError(t, err)
	assert.Equal(t, c.ID, bySerial.ID)

	byEmail, err := s.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)
}

func TestUserStoreIDsNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	ids := make([]int64, 0, 3)
	for _, name := range []string{"ana", "ben", "cara"} {
		u := &models.User{Username: name, PasswordHash: "x", Role: models.RoleHR, Name: name, Active: true}
		require.NoError(t, s.Create(ctx, u))
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)

	require.NoError(t, s.Delete(ctx, 3))
	require.NoError(t, s.Delete(ctx, 1))

	next := &models.User{Username: "dev", PasswordHash: "x", Role: models.RolePanel, Name: "dev", Active: true}
	require.NoError(t, s.Create(ctx, next))
	assert.Equal(t, int64(4), next.ID)

	_, _, err := s.List(ctx, models.UserFilter{})
	require.NoError(t, err)
	_, err = s.FindByID(ctx, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserStoreDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	assert.ErrorIs(t, s.Delete(ctx, 7), sql.ErrNoRows)
}

func TestUserStoreUpdatePasswordDoesNotTouchProfile(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	u := &models.User{Username: "ana", PasswordHash: "old", Role: models.RoleAdmin, Name: "Ana", Active: true}
	require.NoError(t, s.Create(ctx, u))

	require.NoError(t, s.UpdatePassword(ctx, u.ID, "new"))

	got, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestRoomStoreReplacePanelsRecomputesOccupied(t *testing.T) {
	ctx := context.Background()
	s := NewRoomStore()

	r := models.NewRoom(models.CreateRoomRequest{RoomNo: "R-101", Capacity: 4, Type: models.RoomTechnical})
	require.NoError(t, s.Create(ctx, r))
	assert.False(t, r.Occupied)

	withPanel, err := s.ReplacePanels(ctx, r.ID, []int64{7})
	require.NoError(t, err)
	assert.True(t, withPanel.Occupied)
	assert.Equal(t, []int64{7}, []int64(withPanel.AssignedPanelIDs))

	empty, err := s.ReplacePanels(ctx, r.ID, nil)
	require.NoError(t, err)
	assert.False(t, empty.Occupied)
	assert.Empty(t, empty.AssignedPanelIDs)
}

func TestRoomStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewRoomStore()

	r := models.NewRoom(models.CreateRoomRequest{RoomNo: "R-101"})
	require.NoError(t, s.Create(ctx, r))
	_, err := s.ReplacePanels(ctx, r.ID, []int64{1, 2})
	require.NoError(t, err)

	got, err := s.FindByID(ctx, r.ID)
	require.NoError(t, err)
	got.AssignedPanelIDs[0] = 99
	got.RoomNo = "mutated"

	fresh, err := s.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.AssignedPanelIDs[0])
	assert.Equal(t, "R-101", fresh.RoomNo)
}

func TestPanelStoreDefaultsAndPatch(t *testing.T) {
	ctx := context.Background()
	s := NewPanelStore()

	p := models.NewPanel(models.CreatePanelRequest{Name: "Panel A", Members: []string{"Ravi", "Mei"}})
	require.NoError(t, s.Create(ctx, p))
	assert.True(t, p.Active)
	assert.Equal(t, int64(0), p.CurrentCandidateID)

	candidateID := int64(9)
	updated, err := s.Update(ctx, p.ID, models.UpdatePanelPatch{CurrentCandidateID: &candidateID})
	require.NoError(t, err)
	assert.Equal(t, int64(9), updated.CurrentCandidateID)
	assert.Equal(t, "Panel A", updated.Name)
	assert.Equal(t, []string{"Ravi", "Mei"}, []string(updated.Members))
}

func TestRolePermissionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewRolePermissionStore()

	rp := &models.RolePermission{
		Role:        models.RoleHR,
		Permissions: models.DefaultRoleBundles()[models.RoleHR],
		Description: "drive floor HR",
	}
	require.NoError(t, s.Create(ctx, rp))

	byRole, err := s.FindByRole(ctx, models.RoleHR)
	require.NoError(t, err)
	assert.True(t, byRole.Permissions.ViewCandidates)
	assert.False(t, byRole.Permissions.ManageUsers)

	desc := "updated"
	updated, err := s.Update(ctx, rp.ID, models.UpdateRolePermissionPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)
	assert.True(t, updated.Permissions.ViewCandidates)

	require.NoError(t, s.Delete(ctx, rp.ID))
	_, err = s.FindByRole(ctx, models.RoleHR)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFeedbackStoreFilter(t *testing.T) {
	ctx := context.Background()
	s := NewFeedbackStore()

	require.NoError(t, s.Create(ctx, &models.Feedback{CandidateID: 1, PanelID: 2, Round: models.RoundGD, Decision: models.DecisionNext}))
	require.NoError(t, s.Create(ctx, &models.Feedback{CandidateID: 1, PanelID: 3, Round: models.RoundScreening, Decision: models.DecisionHold}))
	require.NoError(t, s.Create(ctx, &models.Feedback{CandidateID: 4, PanelID: 2, Round: models.RoundGD, Decision: models.DecisionReject}))

	all, err := s.List(ctx, models.FeedbackFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCandidate, err := s.List(ctx, models.FeedbackFilter{CandidateID: 1})
	require.NoError(t, err)
	assert.Len(t, byCandidate, 2)

	byPanelRound, err := s.List(ctx, models.FeedbackFilter{PanelID: 2, Round: models.RoundGD})
	require.NoError(t, err)
	assert.Len(t, byPanelRound, 2)
}
