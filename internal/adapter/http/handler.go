package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/notify"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/apperror"
	"resume-builder/pkg/logger"
)

type Handler struct {
	editor *usecase.Editor
	center *notify.Center
	log    logger.Logger
}

func NewHandler(e *usecase.Editor, c *notify.Center, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{editor: e, center: c, log: log}
}

// Register mounts all routes on app.
func (h *Handler) Register(app fiber.Router) {
	app.Get("/resume", h.GetResume)
	app.Put("/resume", h.ReplaceResume)
	app.Post("/resume/reset", h.ResetResume)
	app.Patch("/resume/profile", h.SetProfileField)
	app.Post("/resume/:collection", h.AddRecord)
	app.Patch("/resume/:collection/:id", h.UpdateRecord)
	app.Delete("/resume/:collection/:id", h.RemoveRecord)

	app.Get("/preview", h.PreviewHTML)
	app.Get("/preview/document", h.PreviewDocument)

	app.Post("/export", h.StartExport)
	app.Get("/exports/:id", h.GetExport)
	app.Get("/exports/:id/file", h.DownloadExport)

	app.Get("/notifications", h.ListNotifications)
	app.Delete("/notifications/:id", h.DismissNotification)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	ae := apperror.From(err)
	status := apperror.ToHTTPStatus(ae)
	if status >= fiber.StatusInternalServerError {
		h.log.Error("http: request failed", err, zap.String("path", c.Path()))
	}
	return c.Status(status).JSON(ae.ToJSON())
}

type fieldReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.editor.Snapshot())
}

func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return h.fail(c, apperror.NewInvalidInput("invalid payload", err))
	}
	r, err := h.editor.Replace(c.UserContext(), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(r)
}

func (h *Handler) ResetResume(c *fiber.Ctx) error {
	return c.JSON(h.editor.Reset(c.UserContext()))
}

func (h *Handler) SetProfileField(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.NewInvalidInput("invalid payload", err))
	}
	r, err := h.editor.SetProfileField(c.UserContext(), req.Field, req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(r.Profile)
}

func (h *Handler) AddRecord(c *fiber.Ctx) error {
	fields := map[string]string{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&fields); err != nil {
			return h.fail(c, apperror.NewInvalidInput("invalid payload", err))
		}
	}
	r, id, err := h.editor.AddRecord(c.UserContext(), c.Params("collection"), fields)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "resume": r})
}

func (h *Handler) UpdateRecord(c *fiber.Ctx) error {
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.NewInvalidInput("invalid payload", err))
	}
	r, err := h.editor.UpdateRecord(c.UserContext(), c.Params("collection"), c.Params("id"), req.Field, req.Value)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(r)
}

func (h *Handler) RemoveRecord(c *fiber.Ctx) error {
	r, err := h.editor.RemoveRecord(c.UserContext(), c.Params("collection"), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(r)
}

func (h *Handler) PreviewHTML(c *fiber.Ctx) error {
	html, err := h.editor.PreviewHTML()
	if err != nil {
		return h.fail(c, apperror.NewInternal("rendering preview", err))
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) PreviewDocument(c *fiber.Ctx) error {
	return c.JSON(h.editor.Document())
}

func (h *Handler) StartExport(c *fiber.Ctx) error {
	x, err := h.editor.Export(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": x.ID().String(), "status": "started"})
}

func (h *Handler) exportJob(c *fiber.Ctx) (*domain.ExportJob, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid export id", err)
	}
	return h.editor.ExportJob(c.UserContext(), id)
}

func (h *Handler) GetExport(c *fiber.Ctx) error {
	job, err := h.exportJob(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(job)
}

func (h *Handler) DownloadExport(c *fiber.Ctx) error {
	job, err := h.exportJob(c)
	if err != nil {
		return h.fail(c, err)
	}
	if job.Status != domain.ExportCompleted || job.Artifacts["pdf"] == "" {
		return h.fail(c, apperror.NewConflict("export", "export has not completed (status: "+job.Status+")"))
	}
	return c.Download(job.Artifacts["pdf"], job.FileName)
}

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	return c.JSON(h.center.Active())
}

func (h *Handler) DismissNotification(c *fiber.Ctx) error {
	if !h.center.Dismiss(c.Params("id")) {
		return h.fail(c, apperror.NewNotFound("notification", c.Params("id")))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
