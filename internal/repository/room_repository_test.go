package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

func roomRows(now time.Time, occupied bool, panelIDs string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_no", "capacity", "floor", "type", "occupied", "assigned_panel_ids", "created_at", "updated_at"}).
		AddRow(int64(2), "R-101", 4, "1", string(models.RoomTechnical), occupied, panelIDs, now, now)
}

func TestRoomRepositoryReplacePanels(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE rooms SET assigned_panel_ids = $2, occupied = $3, updated_at = $4 WHERE id = $1 RETURNING id, room_no, capacity, floor, type, occupied, assigned_panel_ids, created_at, updated_at")).
		WithArgs(int64(2), sqlmock.AnyArg(), true, sqlmock.AnyArg()).
		WillReturnRows(roomRows(time.Now(), true, "{3}"))

	room, err := repo.ReplacePanels(context.Background(), 2, []int64{3})
	require.NoError(t, err)
	assert.True(t, room.Occupied)
	assert.Equal(t, []int64{3}, []int64(room.AssignedPanelIDs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryReplacePanelsToEmpty(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE rooms SET assigned_panel_ids = $2, occupied = $3, updated_at = $4 WHERE id = $1 RETURNING id, room_no, capacity, floor, type, occupied, assigned_panel_ids, created_at, updated_at")).
		WithArgs(int64(2), sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnRows(roomRows(time.Now(), false, "{}"))

	room, err := repo.ReplacePanels(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.False(t, room.Occupied)
	assert.Empty(t, room.AssignedPanelIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRoomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (room_no, capacity, floor, type, occupied, assigned_panel_ids, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id")).
		WithArgs("R-101", 4, "1", string(models.RoomTechnical), false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	room := models.NewRoom(models.CreateRoomRequest{RoomNo: "R-101", Capacity: 4, Floor: "1", Type: models.RoomTechnical})
	require.NoError(t, repo.Create(context.Background(), room))
	assert.Equal(t, int64(2), room.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
