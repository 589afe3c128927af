package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/collection"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/pkg/apperror"
	"resume-builder/pkg/formatters"
	"resume-builder/pkg/logger"
)

type SnapshotRepo interface {
	Load(ctx context.Context) model.Resume
	Save(ctx context.Context, r model.Resume) error
}

// Editor owns the current resume snapshot. Every edit builds a new snapshot,
// persists it and swaps it in; edits never overlap.
type Editor struct {
	repo      SnapshotRepo
	html      *render.Renderer
	ids       collection.IDGenerator
	exporter  *Exporter
	notifier  notify.Notifier
	notifyFor time.Duration
	dateStyle formatters.DateStyle
	log       logger.Logger

	mu      sync.Mutex
	current model.Resume
}

type EditorOption func(*Editor)

func WithIDGenerator(g collection.IDGenerator) EditorOption {
	return func(e *Editor) { e.ids = g }
}

func WithExporter(x *Exporter) EditorOption {
	return func(e *Editor) { e.exporter = x }
}

// WithNotifier sets where editor level failures are reported and for how
// long they stay visible. A zero duration keeps them until dismissed.
func WithNotifier(n notify.Notifier, d time.Duration) EditorOption {
	return func(e *Editor) {
		e.notifier = n
		e.notifyFor = d
	}
}

func WithDateStyle(s formatters.DateStyle) EditorOption {
	return func(e *Editor) { e.dateStyle = s }
}

func WithLogger(l logger.Logger) EditorOption {
	return func(e *Editor) { e.log = l }
}

// NewEditor loads the stored snapshot (or the default one) and returns an
// editor over it.
func NewEditor(ctx context.Context, repo SnapshotRepo, html *render.Renderer, opts ...EditorOption) *Editor {
	e := &Editor{
		repo:      repo,
		html:      html,
		ids:       collection.NewULIDGenerator(),
		dateStyle: formatters.Numeric,
		log:       logger.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	e.current = repo.Load(ctx)
	return e
}

// Snapshot returns the current document.
func (e *Editor) Snapshot() model.Resume {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// commit applies fn to the current snapshot and stores the result. A failed
// save is logged; the in-memory snapshot still advances.
func (e *Editor) commit(ctx context.Context, fn func(model.Resume) (model.Resume, error)) (model.Resume, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(e.current)
	if err != nil {
		return e.current, err
	}
	e.current = next
	if err := e.repo.Save(ctx, next); err != nil {
		e.log.Error("editor: saving snapshot failed", err)
	}
	return next, nil
}

func invalid(err error) error {
	if errors.Is(err, model.ErrUnknownField) || errors.Is(err, model.ErrUnknownCollection) {
		return apperror.NewInvalidInput(err.Error(), err)
	}
	return err
}

func (e *Editor) SetProfileField(ctx context.Context, field, value string) (model.Resume, error) {
	f, err := model.ParseProfileField(field)
	if err != nil {
		return e.Snapshot(), invalid(err)
	}
	return e.commit(ctx, func(r model.Resume) (model.Resume, error) {
		return r.WithProfileField(f, value), nil
	})
}

// AddRecord appends or prepends a new record, per the collection's policy,
// and returns its id.
func (e *Editor) AddRecord(ctx context.Context, coll string, fields map[string]string) (model.Resume, string, error) {
	c, err := model.ParseCollection(coll)
	if err != nil {
		return e.Snapshot(), "", invalid(err)
	}
	var id string
	r, err := e.commit(ctx, func(r model.Resume) (model.Resume, error) {
		next, newID, err := r.AddRecord(c, e.ids, fields)
		id = newID
		return next, invalid(err)
	})
	if err != nil {
		return r, "", err
	}
	e.log.Debug("editor: record added", zap.String("collection", coll), zap.String("id", id))
	return r, id, nil
}

// UpdateRecord sets one field of one record. An unknown id is a no-op.
func (e *Editor) UpdateRecord(ctx context.Context, coll, id, field, value string) (model.Resume, error) {
	c, err := model.ParseCollection(coll)
	if err != nil {
		return e.Snapshot(), invalid(err)
	}
	return e.commit(ctx, func(r model.Resume) (model.Resume, error) {
		next, err := r.UpdateRecord(c, id, field, value)
		return next, invalid(err)
	})
}

// RemoveRecord drops one record. An unknown id is a no-op.
func (e *Editor) RemoveRecord(ctx context.Context, coll, id string) (model.Resume, error) {
	c, err := model.ParseCollection(coll)
	if err != nil {
		return e.Snapshot(), invalid(err)
	}
	return e.commit(ctx, func(r model.Resume) (model.Resume, error) {
		return r.RemoveRecord(c, id)
	})
}

// Replace swaps in a whole document after checking its shape.
func (e *Editor) Replace(ctx context.Context, doc model.Resume) (model.Resume, error) {
	b, err := model.Encode(doc)
	if err != nil {
		return e.Snapshot(), apperror.NewInvalidInput("document cannot be encoded", err)
	}
	checked, err := model.Decode(b)
	if err != nil {
		return e.Snapshot(), apperror.NewInvalidInput(err.Error(), err)
	}
	return e.commit(ctx, func(model.Resume) (model.Resume, error) {
		return checked, nil
	})
}

// Reset goes back to the built-in sample document.
func (e *Editor) Reset(ctx context.Context) model.Resume {
	r, _ := e.commit(ctx, func(model.Resume) (model.Resume, error) {
		return model.Default(), nil
	})
	return r
}

// Document renders the current snapshot into the preview structure.
func (e *Editor) Document() render.Document {
	return render.Build(e.Snapshot(), render.WithDateStyle(e.dateStyle))
}

// PreviewHTML renders the current snapshot as a printable page.
func (e *Editor) PreviewHTML() (string, error) {
	return e.html.HTML(e.Document())
}

// Export starts an asynchronous PDF export of the current snapshot. Later
// edits do not affect an export already started.
func (e *Editor) Export(ctx context.Context) (*Export, error) {
	if e.exporter == nil {
		if e.notifier != nil {
			e.notifier.Notify(ExportUnavailableMessage, notify.Error, e.notifyFor)
		}
		return nil, apperror.NewInternal("export is not configured", nil)
	}
	snap := e.Snapshot()
	doc := render.Build(snap, render.WithDateStyle(e.dateStyle))
	return e.exporter.Start(ctx, doc, model.ExportFileName(snap.Profile.FullName)), nil
}

// ExportJob returns the recorded state of an export.
func (e *Editor) ExportJob(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if e.exporter == nil {
		return nil, apperror.NewNotFound("export", id.String())
	}
	return e.exporter.Job(ctx, id)
}
