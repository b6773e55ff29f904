package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

const candidateColumns = `id, serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at`

// CandidateRepository provides database access for candidates.
type CandidateRepository struct {
	db *sqlx.DB
}

// NewCandidateRepository creates a new instance of CandidateRepository.
func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create inserts the candidate and backfills the serial number and QR URL
// derived from the assigned id, all within one transaction.
func (r *CandidateRepository) Create(ctx context.Context, c *models.Candidate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create candidate: begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = now
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	const insert = `INSERT INTO candidates (serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at) VALUES ('', $1, $2, $3, $4, $5, $6, $7, $8, '', $9, $10, $11, $12) RETURNING id`
	if err := tx.GetContext(ctx, &c.ID, insert,
		c.Name, c.Email, c.Phone, c.Position, c.Status, c.CurrentRound,
		c.AssignedPanelID, c.RoomNo, c.Source, c.RegisteredAt, c.CreatedAt, c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create candidate: insert: %w", err)
	}

	c.SerialNumber = models.SerialNumber(c.ID)
	c.QRCodeURL = models.QRCode(c.SerialNumber)

	const backfill = `UPDATE candidates SET serial_number = $2, qr_code_url = $3 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, backfill, c.ID, c.SerialNumber, c.QRCodeURL); err != nil {
		return fmt.Errorf("create candidate: backfill serial: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create candidate: commit: %w", err)
	}
	return nil
}

// FindByID returns a candidate by identifier.
func (r *CandidateRepository) FindByID(ctx context.Context, id int64) (*models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1 LIMIT 1`, candidateColumns)
	var c models.Candidate
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find candidate by id: %w", err)
	}
	return &c, nil
}

// FindBySerial returns a candidate by serial number.
func (r *CandidateRepository) FindBySerial(ctx context.Context, serial string) (*models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE serial_number = $1 LIMIT 1`, candidateColumns)
	var c models.Candidate
	if err := r.db.GetContext(ctx, &c, query, serial); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find candidate by serial: %w", err)
	}
	return &c, nil
}

// FindByEmail returns a candidate by email address.
func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE LOWER(email) = LOWER($1) LIMIT 1`, candidateColumns)
	var c models.Candidate
	if err := r.db.GetContext(ctx, &c, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find candidate by email: %w", err)
	}
	return &c, nil
}

// List returns candidates matching the filter in insertion order with the
// total match count. PageSize 0 disables paging.
func (r *CandidateRepository) List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, int, error) {
	baseQuery := `FROM candidates WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.Round != "" {
		conditions = append(conditions, fmt.Sprintf("current_round = $%d", len(args)+1))
		args = append(args, filter.Round)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d OR LOWER(serial_number) LIKE $%d)", len(args)+1, len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY id ASC", candidateColumns, baseQuery)
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		listQuery += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.PageSize, (page-1)*filter.PageSize)
	}

	var candidates []models.Candidate
	if err := r.db.SelectContext(ctx, &candidates, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list candidates: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", baseQuery)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count candidates: %w", err)
	}

	return candidates, total, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *CandidateRepository) Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now().UTC()}

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Position != nil {
		add("position", *patch.Position)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.CurrentRound != nil {
		add("current_round", *patch.CurrentRound)
	}
	if patch.AssignedPanelID != nil {
		add("assigned_panel_id", *patch.AssignedPanelID)
	}
	if patch.RoomNo != nil {
		add("room_no", *patch.RoomNo)
	}

	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), candidateColumns)
	var c models.Candidate
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return &c, nil
}
