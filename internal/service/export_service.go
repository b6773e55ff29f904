package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
	"github.com/noah-isme/walkin-drive-api/pkg/export"
)

type exportCandidateRepository interface {
	List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, int, error)
}

type rosterExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, headers []string, rows [][]string) error
}

// ExportService renders the candidate roster for download.
type ExportService struct {
	candidates exportCandidateRepository
	csv        rosterExporter
	pdf        rosterExporter
	logger     *zap.Logger
	title      string
}

// NewExportService constructs the export service.
func NewExportService(candidates exportCandidateRepository, logger *zap.Logger, title string) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if title == "" {
		title = "Walk-in Drive Candidates"
	}
	return &ExportService{
		candidates: candidates,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(title),
		logger:     logger,
		title:      title,
	}
}

var rosterHeaders = []string{"Serial", "Name", "Email", "Phone", "Position", "Status", "Round", "Source", "Registered At"}

// Candidates streams the filtered roster in the requested format. The
// returned values are the content type and suggested filename; the body
// is written to w.
func (s *ExportService) Candidates(ctx context.Context, w io.Writer, format string, filter models.CandidateFilter) (string, string, error) {
	var exporter rosterExporter
	switch format {
	case "csv", "":
		exporter = s.csv
	case "pdf":
		exporter = s.pdf
	default:
		return "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	// Exports always cover the full filtered set, never a page.
	filter.Page = 0
	filter.PageSize = 0
	candidates, _, err := s.candidates.List(ctx, filter)
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidates")
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			c.SerialNumber,
			c.Name,
			c.Email,
			c.Phone,
			c.Position,
			string(c.Status),
			c.CurrentRound,
			c.Source,
			c.RegisteredAt.UTC().Format(time.RFC3339),
		})
	}

	if err := exporter.Export(w, rosterHeaders, rows); err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("roster exported",
		zap.String("format", exporter.FileExtension()),
		zap.Int("rows", len(rows)))

	filename := fmt.Sprintf("candidates-%s.%s", time.Now().UTC().Format("20060102-150405"), exporter.FileExtension())
	return exporter.ContentType(), filename, nil
}
