package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

const roomColumns = `id, room_no, capacity, floor, type, occupied, assigned_panel_ids, created_at, updated_at`

// RoomRepository provides database access for interview rooms.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository creates a new instance of RoomRepository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a new room and fills the assigned id and timestamps.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.AssignedPanelIDs == nil {
		room.AssignedPanelIDs = pq.Int64Array{}
	}
	room.Occupied = len(room.AssignedPanelIDs) > 0

	const query = `INSERT INTO rooms (room_no, capacity, floor, type, occupied, assigned_panel_ids, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.GetContext(ctx, &room.ID, query,
		room.RoomNo, room.Capacity, room.Floor, room.Type, room.Occupied,
		room.AssignedPanelIDs, room.CreatedAt, room.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// FindByID returns a room by identifier.
func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1 LIMIT 1`, roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find room by id: %w", err)
	}
	return &room, nil
}

// FindByRoomNo returns a room by its unique room number.
func (r *RoomRepository) FindByRoomNo(ctx context.Context, roomNo string) (*models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE room_no = $1 LIMIT 1`, roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, roomNo); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find room by room no: %w", err)
	}
	return &room, nil
}

// List returns all rooms in insertion order.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms ORDER BY id ASC`, roomColumns)
	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *RoomRepository) Update(ctx context.Context, id int64, patch models.UpdateRoomPatch) (*models.Room, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now().UTC()}

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if patch.RoomNo != nil {
		add("room_no", *patch.RoomNo)
	}
	if patch.Capacity != nil {
		add("capacity", *patch.Capacity)
	}
	if patch.Floor != nil {
		add("floor", *patch.Floor)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}

	query := fmt.Sprintf(`UPDATE rooms SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	return &room, nil
}

// ReplacePanels swaps the room's assigned-panel list and stores the
// occupied flag recomputed from it.
func (r *RoomRepository) ReplacePanels(ctx context.Context, id int64, panelIDs []int64) (*models.Room, error) {
	query := fmt.Sprintf(`UPDATE rooms SET assigned_panel_ids = $2, occupied = $3, updated_at = $4 WHERE id = $1 RETURNING %s`, roomColumns)
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, id, pq.Int64Array(panelIDs), len(panelIDs) > 0, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("replace room panels: %w", err)
	}
	return &room, nil
}
