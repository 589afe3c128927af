package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/pkg/logger"
)

const (
	ExportSucceededMessage = "Resume downloaded successfully!"
	ExportFailedMessage    = "Failed to generate PDF. Please try again."
	// ExportUnavailableMessage is shown when no PDF renderer is wired in.
	ExportUnavailableMessage = "PDF library not loaded"
)

type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
}

// ExportResult is the outcome of one export. Path is empty on failure.
type ExportResult struct {
	Job  domain.ExportJob
	Path string
	Err  error
}

// Export is the handle of a running export.
type Export struct {
	id   uuid.UUID
	done chan ExportResult
}

func (x *Export) ID() uuid.UUID { return x.id }

// Done yields exactly one result.
func (x *Export) Done() <-chan ExportResult { return x.done }

// Wait blocks until the export finishes or ctx ends.
func (x *Export) Wait(ctx context.Context) (ExportResult, error) {
	select {
	case res := <-x.done:
		return res, nil
	case <-ctx.Done():
		return ExportResult{}, ctx.Err()
	}
}

type ExporterConfig struct {
	OutputDir string
	Attempts  int
	// NotifyDuration is how long outcome notifications stay visible. Zero
	// keeps them until dismissed; a negative value picks the default.
	NotifyDuration time.Duration
	// Backoff returns the wait before retry i+1; defaults to 1s, 2s, 4s...
	Backoff func(i int) time.Duration
}

// Exporter turns a rendered document into a PDF file, retrying the
// renderer and reporting the outcome through notifications.
type Exporter struct {
	pdf      PDFRenderer
	html     *render.Renderer
	repo     JobsRepo
	notifier notify.Notifier
	cfg      ExporterConfig
	log      logger.Logger
	now      func() time.Time
}

func NewExporter(pdf PDFRenderer, html *render.Renderer, repo JobsRepo, n notify.Notifier, cfg ExporterConfig, log logger.Logger) *Exporter {
	if cfg.Attempts < 1 {
		cfg.Attempts = 3
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.NotifyDuration < 0 {
		cfg.NotifyDuration = notify.DefaultDuration
	}
	if cfg.Backoff == nil {
		cfg.Backoff = func(i int) time.Duration { return time.Duration(1<<i) * time.Second }
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Exporter{pdf: pdf, html: html, repo: repo, notifier: n, cfg: cfg, log: log, now: time.Now}
}

// Start registers a job and runs it in the background. The export is not
// tied to ctx's cancellation.
func (x *Exporter) Start(ctx context.Context, doc render.Document, fileName string) *Export {
	job := domain.NewExportJob(x.now())
	job.FileName = fileName
	if err := x.repo.Save(ctx, job); err != nil {
		x.log.Warn("export: failed to save job", zap.String("job_id", job.ID.String()), zap.Error(err))
	}

	h := &Export{id: job.ID, done: make(chan ExportResult, 1)}
	bg := context.WithoutCancel(ctx)
	go func() {
		h.done <- x.Run(bg, job, doc)
		close(h.done)
	}()
	return h
}

// Run performs the export synchronously and always leaves the job in a
// terminal state.
func (x *Exporter) Run(ctx context.Context, job *domain.ExportJob, doc render.Document) ExportResult {
	path, err := x.produce(ctx, job, doc)

	job.UpdatedAt = x.now()
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		x.log.Error("export: failed", err, zap.String("job_id", job.ID.String()))
		x.notifier.Notify(ExportFailedMessage, notify.Error, x.cfg.NotifyDuration)
	} else {
		job.Status = domain.ExportCompleted
		x.log.Info("export: completed", zap.String("job_id", job.ID.String()), zap.String("path", path))
		x.notifier.Notify(ExportSucceededMessage, notify.Success, x.cfg.NotifyDuration)
	}

	if serr := x.repo.Save(ctx, job); serr != nil {
		x.log.Warn("export: failed to save job", zap.String("job_id", job.ID.String()), zap.Error(serr))
	}
	return ExportResult{Job: cloneJob(job), Path: path, Err: err}
}

func (x *Exporter) produce(ctx context.Context, job *domain.ExportJob, doc render.Document) (string, error) {
	html, err := x.html.HTML(doc)
	if err != nil {
		return "", err
	}

	// save HTML artifact before rendering so it's preserved even if rendering fails
	genDir := filepath.Join(x.cfg.OutputDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return "", err
	}
	htmlPath := filepath.Join(genDir, fmt.Sprintf("resume_%s.html", job.ID))
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", err
	}
	job.Artifacts["html"] = htmlPath

	pdfBytes, err := x.renderWithRetry(ctx, job, html)
	if err != nil {
		return "", err
	}

	pdfPath := filepath.Join(x.cfg.OutputDir, filepath.Base(job.FileName))
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return "", err
	}
	job.Artifacts["pdf"] = pdfPath
	return pdfPath, nil
}

func (x *Exporter) renderWithRetry(ctx context.Context, job *domain.ExportJob, html string) ([]byte, error) {
	var pdfBytes []byte
	var renderErr error
	for i := 0; i < x.cfg.Attempts; i++ {
		job.Attempts = i + 1
		pdfBytes, renderErr = x.pdf.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		x.log.Warn("export: render attempt failed", zap.Int("attempt", i+1), zap.Error(renderErr))
		if i < x.cfg.Attempts-1 {
			select {
			case <-time.After(x.cfg.Backoff(i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", x.cfg.Attempts, renderErr)
}

// Job looks up a previous export.
func (x *Exporter) Job(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	return x.repo.Get(ctx, id)
}

func cloneJob(j *domain.ExportJob) domain.ExportJob {
	out := *j
	out.Artifacts = make(map[string]string, len(j.Artifacts))
	for k, v := range j.Artifacts {
		out.Artifacts[k] = v
	}
	return out
}
