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

const panelColumns = `id, name, room_no, active, current_candidate_id, members, created_at, updated_at`

// PanelRepository provides database access for interview panels.
type PanelRepository struct {
	db *sqlx.DB
}

// NewPanelRepository creates a new instance of PanelRepository.
func NewPanelRepository(db *sqlx.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

// Create inserts a new panel and fills the assigned id and timestamps.
func (r *PanelRepository) Create(ctx context.Context, p *models.Panel) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Members == nil {
		p.Members = pq.StringArray{}
	}

	const query = `INSERT INTO panels (name, room_no, active, current_candidate_id, members, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &p.ID, query,
		p.Name, p.RoomNo, p.Active, p.CurrentCandidateID, p.Members, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create panel: %w", err)
	}
	return nil
}

// FindByID returns a panel by identifier.
func (r *PanelRepository) FindByID(ctx context.Context, id int64) (*models.Panel, error) {
	query := fmt.Sprintf(`SELECT %s FROM panels WHERE id = $1 LIMIT 1`, panelColumns)
	var p models.Panel
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find panel by id: %w", err)
	}
	return &p, nil
}

// List returns all panels in insertion order.
func (r *PanelRepository) List(ctx context.Context) ([]models.Panel, error) {
	query := fmt.Sprintf(`SELECT %s FROM panels ORDER BY id ASC`, panelColumns)
	var panels []models.Panel
	if err := r.db.SelectContext(ctx, &panels, query); err != nil {
		return nil, fmt.Errorf("list panels: %w", err)
	}
	return panels, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *PanelRepository) Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now().UTC()}

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.RoomNo != nil {
		add("room_no", *patch.RoomNo)
	}
	if patch.Active != nil {
		add("active", *patch.Active)
	}
	if patch.CurrentCandidateID != nil {
		add("current_candidate_id", *patch.CurrentCandidateID)
	}
	if patch.Members != nil {
		add("members", pq.StringArray(*patch.Members))
	}

	query := fmt.Sprintf(`UPDATE panels SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), panelColumns)
	var p models.Panel
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update panel: %w", err)
	}
	return &p, nil
}
