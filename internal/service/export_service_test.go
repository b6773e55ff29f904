package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/store"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*ExportService, *CandidateService) {
	t.Helper()
	st := store.New()
	candidates := NewCandidateService(st.Candidates, validator.New(), zap.NewNop(), nil, nil)
	return NewExportService(st.Candidates, zap.NewNop(), "Walk-in Drive Candidates"), candidates
}

func TestExportCandidatesCSV(t *testing.T) {
	svc, candidates := newExportFixture(t)
	registerCandidate(t, candidates, "Asha Rao", "asha@example.com")
	registerCandidate(t, candidates, "Vikram Iyer", "vikram@example.com")

	var buf bytes.Buffer
	contentType, filename, err := svc.Candidates(context.Background(), &buf, "csv", models.CandidateFilter{})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Serial")
	assert.Contains(t, lines[1], "WD-001")
	assert.Contains(t, lines[1], "Asha Rao")
	assert.Contains(t, lines[2], "WD-002")
}

func TestExportCandidatesCSVHonorsFilter(t *testing.T) {
	svc, candidates := newExportFixture(t)
	registerCandidate(t, candidates, "Asha Rao", "asha@example.com")
	kept := registerCandidate(t, candidates, "Vikram Iyer", "vikram@example.com")

	status := models.StatusRejected
	_, err := candidates.Update(context.Background(), kept.ID, models.UpdateCandidatePatch{Status: &status})
	require.NoError(t, err)

	var buf bytes.Buffer
	rejected := models.StatusRejected
	_, _, err = svc.Candidates(context.Background(), &buf, "csv", models.CandidateFilter{Status: &rejected})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Vikram Iyer")
}

func TestExportCandidatesPDF(t *testing.T) {
	svc, candidates := newExportFixture(t)
	registerCandidate(t, candidates, "Asha Rao", "asha@example.com")

	var buf bytes.Buffer
	contentType, filename, err := svc.Candidates(context.Background(), &buf, "pdf", models.CandidateFilter{})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportCandidatesDefaultsToCSV(t *testing.T) {
	svc, _ := newExportFixture(t)

	var buf bytes.Buffer
	contentType, _, err := svc.Candidates(context.Background(), &buf, "", models.CandidateFilter{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
}

func TestExportCandidatesUnknownFormat(t *testing.T) {
	svc, _ := newExportFixture(t)

	var buf bytes.Buffer
	_, _, err := svc.Candidates(context.Background(), &buf, "xlsx", models.CandidateFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, buf.Len())
}
