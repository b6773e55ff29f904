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

type roomFixture struct {
	rooms  *RoomService
	panels *PanelService
	store  *store.Store
	pub    *capturePublisher
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()
	st := store.New()
	pub := &capturePublisher{}
	return &roomFixture{
		rooms:  NewRoomService(st.Rooms, st.Panels, validator.New(), zap.NewNop(), pub),
		panels: NewPanelService(st.Panels, st.Candidates, validator.New(), zap.NewNop(), pub, nil),
		store:  st,
		pub:    pub,
	}
}

func (f *roomFixture) createRoom(t *testing.T, roomNo string, capacity int) *models.Room {
	t.Helper()
	r, err := f.rooms.Create(context.Background(), models.CreateRoomRequest{
		RoomNo:   roomNo,
		Capacity: capacity,
		Floor:    "2",
		Type:     models.RoomTechnical,
	})
	require.NoError(t, err)
	return r
}

func TestRoomCreateDefaults(t *testing.T) {
	f := newRoomFixture(t)

	r, err := f.rooms.Create(context.Background(), models.CreateRoomRequest{RoomNo: "R-201"})
	require.NoError(t, err)
	assert.Equal(t, models.RoomGeneral, r.Type)
	assert.Equal(t, 1, r.Capacity)
	assert.False(t, r.Occupied)
	assert.Empty(t, r.AssignedPanelIDs)
}

func TestRoomCreateDuplicateNumber(t *testing.T) {
	f := newRoomFixture(t)
	f.createRoom(t, "R-201", 2)

	_, err := f.rooms.Create(context.Background(), models.CreateRoomRequest{RoomNo: "R-201"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRoomAssignPanelAttachesAndLabels(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)
	f.pub.events = nil

	got, err := f.rooms.AssignPanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)

	assert.True(t, got.Occupied)
	assert.True(t, got.HasPanel(panel.ID))

	relabeled, err := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, err)
	assert.Equal(t, "R-201", relabeled.RoomNo)
	assert.Equal(t, []models.EventKind{models.EventRoomUpdated, models.EventPanelUpdated}, f.pub.kinds())
}

func TestRoomAssignPanelMovesBetweenRooms(t *testing.T) {
	f := newRoomFixture(t)
	first := f.createRoom(t, "R-201", 2)
	second := f.createRoom(t, "R-202", 2)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), first.ID, panel.ID)
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), second.ID, panel.ID)
	require.NoError(t, err)

	prev, err := f.rooms.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, prev.Occupied)
	assert.False(t, prev.HasPanel(panel.ID))

	curr, err := f.rooms.Get(context.Background(), second.ID)
	require.NoError(t, err)
	assert.True(t, curr.Occupied)
	assert.True(t, curr.HasPanel(panel.ID))

	relabeled, err := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, err)
	assert.Equal(t, "R-202", relabeled.RoomNo)
}

func TestRoomAssignPanelIdempotent(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)

	again, err := f.rooms.AssignPanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)
	assert.Len(t, again.AssignedPanelIDs, 1)
}

func TestRoomAssignPanelCapacity(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 1)
	first, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)
	second, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel B"})
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), room.ID, first.ID)
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), room.ID, second.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRoomAssignPanelNotFound(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)

	_, err := f.rooms.AssignPanel(context.Background(), room.ID, 404)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = f.rooms.AssignPanel(context.Background(), 404, 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRoomRemovePanelClearsLabelWhenMatching(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)

	got, err := f.rooms.RemovePanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)
	assert.False(t, got.Occupied)
	assert.False(t, got.HasPanel(panel.ID))

	cleared, err := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.RoomNo)
}

func TestRoomRemovePanelKeepsForeignLabel(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)
	panel, err := f.panels.Create(context.Background(), models.CreatePanelRequest{Name: "Panel A"})
	require.NoError(t, err)

	_, err = f.rooms.AssignPanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)

	// Relabel the panel manually, as if an operator had moved it.
	other := "R-999"
	_, err = f.panels.Update(context.Background(), panel.ID, models.UpdatePanelPatch{RoomNo: &other})
	require.NoError(t, err)

	_, err = f.rooms.RemovePanel(context.Background(), room.ID, panel.ID)
	require.NoError(t, err)

	kept, err := f.panels.Get(context.Background(), panel.ID)
	require.NoError(t, err)
	assert.Equal(t, "R-999", kept.RoomNo)
}

func TestRoomRemoveAbsentPanelIsNoOp(t *testing.T) {
	f := newRoomFixture(t)
	room := f.createRoom(t, "R-201", 2)
	f.pub.events = nil

	got, err := f.rooms.RemovePanel(context.Background(), room.ID, 42)
	require.NoError(t, err)
	assert.False(t, got.Occupied)
	assert.Empty(t, f.pub.events)
}

func TestRoomUpdateDuplicateNumber(t *testing.T) {
	f := newRoomFixture(t)
	f.createRoom(t, "R-201", 2)
	second := f.createRoom(t, "R-202", 2)

	taken := "R-201"
	_, err := f.rooms.Update(context.Background(), second.ID, models.UpdateRoomPatch{RoomNo: &taken})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	// Keeping your own number is fine.
	own := "R-202"
	_, err = f.rooms.Update(context.Background(), second.ID, models.UpdateRoomPatch{RoomNo: &own})
	require.NoError(t, err)
}
