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

func candidateRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "serial_number", "name", "email", "phone", "position", "status", "current_round", "assigned_panel_id", "room_no", "qr_code_url", "source", "registered_at", "created_at", "updated_at"}).
		AddRow(int64(7), "WD-007", "Asha", "asha@example.com", "9999999999", "Backend Engineer", string(models.StatusRegistered), models.RoundGD, int64(0), "", models.QRCode("WD-007"), models.SourceManual, now, now, now)
}

func TestCandidateRepositoryCreateBackfillsSerial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCandidateRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO candidates (serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at) VALUES ('', $1, $2, $3, $4, $5, $6, $7, $8, '', $9, $10, $11, $12) RETURNING id")).
		WithArgs("Asha", "asha@example.com", "9999999999", "Backend Engineer",
			string(models.StatusRegistered), models.RoundGD, int64(0), "",
			models.SourceManual, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE candidates SET serial_number = $2, qr_code_url = $3 WHERE id = $1")).
		WithArgs(int64(7), "WD-007", models.QRCode("WD-007")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := models.NewCandidate(models.RegisterCandidateRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "9999999999",
		Position: "Backend Engineer",
	}, models.SourceManual, time.Now().UTC())
	require.NoError(t, repo.Create(context.Background(), c))

	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "WD-007", c.SerialNumber)
	assert.Contains(t, c.QRCodeURL, "WD-007")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryFindBySerial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCandidateRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at FROM candidates WHERE serial_number = $1 LIMIT 1")).
		WithArgs("WD-007").
		WillReturnRows(candidateRows(time.Now()))

	c, err := repo.FindBySerial(context.Background(), "WD-007")
	require.NoError(t, err)
	assert.Equal(t, "Asha", c.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryUpdatePartial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCandidateRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE candidates SET updated_at = $2, status = $3, current_round = $4 WHERE id = $1 RETURNING id, serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at")).
		WithArgs(int64(7), sqlmock.AnyArg(), string(models.StatusInQueue), models.RoundScreening).
		WillReturnRows(candidateRows(time.Now()))

	inQueue := models.StatusInQueue
	screening := models.RoundScreening
	_, err := repo.Update(context.Background(), 7, models.UpdateCandidatePatch{
		Status:       &inQueue,
		CurrentRound: &screening,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCandidateRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, serial_number, name, email, phone, position, status, current_round, assigned_panel_id, room_no, qr_code_url, source, registered_at, created_at, updated_at FROM candidates WHERE 1=1 AND current_round = $1 ORDER BY id ASC")).
		WithArgs(models.RoundGD).
		WillReturnRows(candidateRows(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM candidates WHERE 1=1 AND current_round = $1")).
		WithArgs(models.RoundGD).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	candidates, total, err := repo.List(context.Background(), models.CandidateFilter{Round: models.RoundGD})
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
