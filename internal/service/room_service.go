package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type roomRepository interface {
	Create(ctx context.Context, r *models.Room) error
	FindByID(ctx context.Context, id int64) (*models.Room, error)
	FindByRoomNo(ctx context.Context, roomNo string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Update(ctx context.Context, id int64, patch models.UpdateRoomPatch) (*models.Room, error)
	ReplacePanels(ctx context.Context, id int64, panelIDs []int64) (*models.Room, error)
}

type roomPanelRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Panel, error)
	Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error)
}

// RoomService handles room management and panel placement. A panel sits in
// at most one room, so assignment always detaches it from wherever it was
// before attaching it to the target.
type RoomService struct {
	repo      roomRepository
	panels    roomPanelRepository
	validator *validator.Validate
	logger    *zap.Logger
	events    EventPublisher
}

// NewRoomService constructs the room service.
func NewRoomService(repo roomRepository, panels roomPanelRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &RoomService{repo: repo, panels: panels, validator: validate, logger: logger, events: events}
}

// Create registers a new room. Room numbers are unique across the drive.
func (s *RoomService) Create(ctx context.Context, req models.CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}

	existing, err := s.repo.FindByRoomNo(ctx, req.RoomNo)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate room number")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "room number already used")
	}

	room := models.NewRoom(req)
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create room")
	}

	s.events.Publish(models.Event{Type: models.EventRoomCreated, Data: room})
	return room, nil
}

// Get returns a room by id.
func (s *RoomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return room, nil
}

// List returns all rooms in creation order.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

// Update applies a partial update to a room. Panel placement changes go
// through AssignPanel and RemovePanel.
func (s *RoomService) Update(ctx context.Context, id int64, patch models.UpdateRoomPatch) (*models.Room, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room patch")
	}

	if patch.RoomNo != nil {
		existing, err := s.repo.FindByRoomNo(ctx, *patch.RoomNo)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate room number")
		}
		if existing != nil && existing.ID != id {
			return nil, appErrors.Clone(appErrors.ErrConflict, "room number already used")
		}
	}

	room, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update room")
	}

	s.events.Publish(models.Event{Type: models.EventRoomUpdated, Data: room})
	return room, nil
}

// AssignPanel places a panel in a room. The panel is first detached from
// any other room holding it, then attached here, and its room label is
// updated to match. Assigning a panel already in the room is a no-op.
func (s *RoomService) AssignPanel(ctx context.Context, roomID, panelID int64) (*models.Room, error) {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	panel, err := s.panels.FindByID(ctx, panelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load panel")
	}

	if room.HasPanel(panelID) {
		return room, nil
	}
	if len(room.AssignedPanelIDs) >= room.Capacity {
		return nil, appErrors.Clone(appErrors.ErrConflict, "room is at capacity")
	}

	if err := s.detachFromOtherRooms(ctx, roomID, panelID); err != nil {
		return nil, err
	}

	room, err = s.repo.ReplacePanels(ctx, roomID, append(append([]int64{}, room.AssignedPanelIDs...), panelID))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to attach panel")
	}

	panel, err = s.panels.Update(ctx, panelID, models.UpdatePanelPatch{RoomNo: strPtr(room.RoomNo)})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to relabel panel")
	}

	s.logger.Info("panel assigned to room",
		zap.Int64("roomId", roomID),
		zap.Int64("panelId", panelID),
		zap.String("roomNo", room.RoomNo))

	s.events.Publish(models.Event{Type: models.EventRoomUpdated, Data: room})
	s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
	return room, nil
}

// RemovePanel takes a panel out of a room. Removing a panel that is not
// in the room is a no-op. The panel's room label is cleared only when it
// still points at this room.
func (s *RoomService) RemovePanel(ctx context.Context, roomID, panelID int64) (*models.Room, error) {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasPanel(panelID) {
		return room, nil
	}

	remaining := make([]int64, 0, len(room.AssignedPanelIDs))
	for _, id := range room.AssignedPanelIDs {
		if id != panelID {
			remaining = append(remaining, id)
		}
	}

	room, err = s.repo.ReplacePanels(ctx, roomID, remaining)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to detach panel")
	}

	panel, err := s.panels.FindByID(ctx, panelID)
	if err == nil && panel.RoomNo == room.RoomNo {
		if panel, err = s.panels.Update(ctx, panelID, models.UpdatePanelPatch{RoomNo: strPtr("")}); err == nil {
			s.events.Publish(models.Event{Type: models.EventPanelUpdated, Data: panel})
		}
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Warn("failed to clear panel room label", zap.Int64("panelId", panelID), zap.Error(err))
	}

	s.events.Publish(models.Event{Type: models.EventRoomUpdated, Data: room})
	return room, nil
}

func (s *RoomService) detachFromOtherRooms(ctx context.Context, targetRoomID, panelID int64) error {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to scan rooms")
	}
	for i := range rooms {
		other := &rooms[i]
		if other.ID == targetRoomID || !other.HasPanel(panelID) {
			continue
		}
		remaining := make([]int64, 0, len(other.AssignedPanelIDs))
		for _, id := range other.AssignedPanelIDs {
			if id != panelID {
				remaining = append(remaining, id)
			}
		}
		updated, err := s.repo.ReplacePanels(ctx, other.ID, remaining)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to detach panel from previous room")
		}
		s.logger.Info("panel detached from previous room",
			zap.Int64("roomId", other.ID),
			zap.Int64("panelId", panelID))
		s.events.Publish(models.Event{Type: models.EventRoomUpdated, Data: updated})
	}
	return nil
}
