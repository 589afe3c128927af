package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
	"resume-builder/pkg/apperror"
)

// JobsRepo keeps export job history in Postgres, or in memory when no pool
// is configured.
type JobsRepo struct {
	pool *pgxpool.Pool

	mu   sync.RWMutex
	jobs map[uuid.UUID]domain.ExportJob
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool, jobs: make(map[uuid.UUID]domain.ExportJob)}
}

func cloneJob(j domain.ExportJob) domain.ExportJob {
	arts := make(map[string]string, len(j.Artifacts))
	for k, v := range j.Artifacts {
		arts[k] = v
	}
	j.Artifacts = arts
	return j
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		r.mu.Lock()
		r.jobs[j.ID] = cloneJob(*j)
		r.mu.Unlock()
		return nil
	}

	artsB, err := json.Marshal(j.Artifacts)
	if err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO export_jobs (id, status, file_name, artifacts, error, attempts, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_name = EXCLUDED.file_name, artifacts = EXCLUDED.artifacts, error = EXCLUDED.error, attempts = EXCLUDED.attempts, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Status, j.FileName, artsB, j.Error, j.Attempts, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		r.mu.RLock()
		j, ok := r.jobs[id]
		r.mu.RUnlock()
		if !ok {
			return nil, apperror.NewNotFound("export", id.String())
		}
		j = cloneJob(j)
		return &j, nil
	}

	var j domain.ExportJob
	var artsB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, status, file_name, artifacts, error, attempts, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Status, &j.FileName, &artsB, &j.Error, &j.Attempts, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("export", id.String())
	}
	if err != nil {
		return nil, apperror.NewInternal("loading export job", err)
	}
	if j.Artifacts, err = decodeArtifacts(artsB); err != nil {
		return nil, apperror.NewInternal("loading export job", err)
	}
	return &j, nil
}

// decodeArtifacts reads the artifacts column. NULL and empty values yield an
// empty map.
func decodeArtifacts(b []byte) (map[string]string, error) {
	arts := map[string]string{}
	if len(b) == 0 {
		return arts, nil
	}
	if err := json.Unmarshal(b, &arts); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	if arts == nil {
		arts = map[string]string{}
	}
	return arts, nil
}
