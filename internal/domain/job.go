package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportPending   = "pending"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJob records one PDF export request and its outcome.
type ExportJob struct {
	ID        uuid.UUID         `json:"id"`
	Status    string            `json:"status"`
	FileName  string            `json:"file_name"`
	Artifacts map[string]string `json:"artifacts"`
	Error     string            `json:"error,omitempty"`
	Attempts  int               `json:"attempts"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewExportJob(now time.Time) *ExportJob {
	return &ExportJob{
		ID:        uuid.New(),
		Status:    ExportPending,
		Artifacts: map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Done reports whether the job reached a terminal status.
func (j *ExportJob) Done() bool {
	return j.Status == ExportCompleted || j.Status == ExportFailed
}
