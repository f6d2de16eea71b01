package repo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

//go:embed schema.sql
var Schema string

var (
	ErrPlanNotFound         = apperr.New(apperr.KindNotFound, "plan not found")
	ErrPlanExerciseNotFound = apperr.New(apperr.KindNotFound, "plan exercise not found")
	ErrExerciseNotFound     = apperr.New(apperr.KindNotFound, "exercise not found")
	ErrProfileNotFound      = apperr.New(apperr.KindNotFound, "profile not found")
	ErrNoBodyMeasurement    = apperr.New(apperr.KindNotFound, "no body measurement")
)

// Repo is the data access layer over postgres. Every query is scoped to one user
// and returns rows ordered by session date, then insertion id.
type Repo struct {
	db                 *pgxpool.Pool
	defaultCycleLength int
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:                 db,
		defaultCycleLength: training.DefaultCycleLength,
	}
}

// SetDefaultCycleLength sets the cycle length of profiles created from now on.
func (r *Repo) SetDefaultCycleLength(n int) {
	if n >= training.MinCycleLength && n <= training.MaxCycleLength {
		r.defaultCycleLength = n
	}
}

// ApplySchema creates missing tables and indexes.
func (r *Repo) ApplySchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// inTx runs fn inside a transaction, committing when fn returns nil.
func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("rollback tx: %s", rbErr)
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	return fn(tx)
}

func weightPtr(v *float64) *training.Weight {
	if v == nil {
		return nil
	}
	w := training.KG(*v)
	return &w
}

func kilosPtr(w *training.Weight) *float64 {
	if w == nil {
		return nil
	}
	k := w.Kilos()
	return &k
}

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
