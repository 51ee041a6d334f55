package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
	"github.com/jwalitptl/doacao-api/pkg/metrics"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository. m may be nil.
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// observe records the store round-trip and translates driver errors.
func (r *BaseRepository) observe(operation string, start time.Time, err error) error {
	r.metrics.ObserveDB(operation, time.Since(start).Seconds(), err)
	return translateError(err)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pqErr.Constraint)
	}
	return err
}

// requireAffected turns a zero-row write into ErrNotFound.
func requireAffected(rows int64) error {
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
