package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/collection"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
)

type okPDF struct{}

func (okPDF) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.7 test"), nil
}

func newApp(t *testing.T) (*fiber.App, *notify.Center) {
	t.Helper()
	html, err := render.NewRenderer("")
	require.NoError(t, err)
	center := notify.NewCenter(nil)
	t.Cleanup(center.Close)

	exp := usecase.NewExporter(okPDF{}, html, repository.NewJobsRepo(nil), center,
		usecase.ExporterConfig{OutputDir: t.TempDir()}, nil)
	ed := usecase.NewEditor(context.Background(), repository.NewSnapshotRepo(store.NewMemory(), "", nil), html,
		usecase.WithIDGenerator(&collection.SequenceGenerator{Prefix: "new-"}),
		usecase.WithExporter(exp),
	)

	app := fiber.New()
	NewHandler(ed, center, nil).Register(app)
	return app, center
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func TestGetResume(t *testing.T) {
	app, _ := newApp(t)
	status, body := do(t, app, "GET", "/resume", "")
	require.Equal(t, fiber.StatusOK, status)

	var r model.Resume
	require.NoError(t, json.Unmarshal(body, &r))
	assert.Equal(t, model.Default(), r)
}

func TestProfileAndRecordEdits(t *testing.T) {
	app, _ := newApp(t)

	status, body := do(t, app, "PATCH", "/resume/profile", `{"field":"fullName","value":"Jane Roe"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"fullName":"Jane Roe"`)

	status, body = do(t, app, "POST", "/resume/skills", `{"name":"Go"}`)
	require.Equal(t, fiber.StatusCreated, status)
	var added struct {
		ID     string       `json:"id"`
		Resume model.Resume `json:"resume"`
	}
	require.NoError(t, json.Unmarshal(body, &added))
	assert.Equal(t, "new-1", added.ID)
	last := added.Resume.Skills[len(added.Resume.Skills)-1]
	assert.Equal(t, model.Skill{ID: "new-1", Name: "Go", Level: model.Intermediate}, last)

	status, body = do(t, app, "PATCH", "/resume/skills/new-1", `{"field":"category","value":"Backend"}`)
	require.Equal(t, fiber.StatusOK, status)
	var patched model.Resume
	require.NoError(t, json.Unmarshal(body, &patched))
	assert.Equal(t, model.Default().Skills, patched.Skills[:4], "existing skills must not change")

	status, body = do(t, app, "DELETE", "/resume/skills/new-1", "")
	require.Equal(t, fiber.StatusOK, status)
	var r model.Resume
	require.NoError(t, json.Unmarshal(body, &r))
	assert.Len(t, r.Skills, 4)
}

func TestAddRecord_EmptyBody(t *testing.T) {
	app, _ := newApp(t)
	status, body := do(t, app, "POST", "/resume/experience", "")
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(body), `"id":"new-1"`)
}

func TestBadRequests(t *testing.T) {
	app, _ := newApp(t)
	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"unknown collection", "POST", "/resume/hobbies", "", fiber.StatusBadRequest},
		{"unknown profile field", "PATCH", "/resume/profile", `{"field":"nick","value":"x"}`, fiber.StatusBadRequest},
		{"unknown record field", "PATCH", "/resume/education/1", `{"field":"gpa","value":"4"}`, fiber.StatusBadRequest},
		{"malformed json", "PUT", "/resume", `{"profile":`, fiber.StatusBadRequest},
		{"invalid shape", "PUT", "/resume", `{"profile":{},"skills":[{"name":"x"}]}`, fiber.StatusBadRequest},
		{"bad export id", "GET", "/exports/nope", "", fiber.StatusBadRequest},
		{"unknown export", "GET", "/exports/7f1b8a5e-8a43-4d4e-9c57-0d1f4a3c2b10", "", fiber.StatusNotFound},
		{"unknown notification", "DELETE", "/notifications/x", "", fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status)
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	app, _ := newApp(t)
	status, body := do(t, app, "DELETE", "/resume/projects/missing", "")
	require.Equal(t, fiber.StatusOK, status)
	var r model.Resume
	require.NoError(t, json.Unmarshal(body, &r))
	assert.Equal(t, model.Default(), r)
}

func TestReplaceAndReset(t *testing.T) {
	app, _ := newApp(t)
	status, body := do(t, app, "PUT", "/resume", `{"profile":{"fullName":"Solo"}}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"experience":[]`)

	status, body = do(t, app, "POST", "/resume/reset", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "ALEX JORDAN")
}

func TestPreview(t *testing.T) {
	app, _ := newApp(t)

	req := httptest.NewRequest("GET", "/preview", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	status, body := do(t, app, "GET", "/preview/document", "")
	require.Equal(t, fiber.StatusOK, status)
	var doc render.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "ALEX JORDAN", doc.Name)
	assert.Equal(t, []string{"JavaScript", "TypeScript"}, doc.Languages)
}

func TestExportFlow(t *testing.T) {
	app, center := newApp(t)

	status, body := do(t, app, "POST", "/export", "")
	require.Equal(t, fiber.StatusAccepted, status)
	var started struct {
		JobID  string `json:"jobId"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &started))
	assert.Equal(t, "started", started.Status)

	var job domain.ExportJob
	require.Eventually(t, func() bool {
		status, body := do(t, app, "GET", "/exports/"+started.JobID, "")
		if status != fiber.StatusOK || json.Unmarshal(body, &job) != nil {
			return false
		}
		return job.Done()
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.ExportCompleted, job.Status)
	assert.Equal(t, "ALEX_JORDAN_Resume.pdf", job.FileName)

	req := httptest.NewRequest("GET", "/exports/"+started.JobID+"/file", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ALEX_JORDAN_Resume.pdf")

	status, body = do(t, app, "GET", "/notifications", "")
	require.Equal(t, fiber.StatusOK, status)
	var ns []notify.Notification
	require.NoError(t, json.Unmarshal(body, &ns))
	require.Len(t, ns, 1)
	assert.Equal(t, usecase.ExportSucceededMessage, ns[0].Message)

	status, _ = do(t, app, "DELETE", "/notifications/"+ns[0].ID, "")
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Empty(t, center.Active())
}
