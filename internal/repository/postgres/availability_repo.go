package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

type availabilityRepo struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) domain.AvailabilityRepository {
	return &availabilityRepo{db: db}
}

// CreateAll bulk-inserts all windows through the ctx-bound transaction.
// It never commits and does no partial cleanup; a failing row surfaces as
// Persistence and the submission service rolls back the whole unit of work.
func (r *availabilityRepo) CreateAll(ctx context.Context, windows []domain.Availability) error {
	if len(windows) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, w := range windows {
		batch.Queue(
			`INSERT INTO availability (person_id, from_date, to_date) VALUES ($1, $2, $3)`,
			w.PersonID, w.FromDate, w.ToDate,
		)
	}

	results := engine(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	for range windows {
		if _, err := results.Exec(); err != nil {
			return apperror.Persistence(err)
		}
	}
	return nil
}

func (r *availabilityRepo) ListByPersonID(ctx context.Context, personID int) ([]domain.Availability, error) {
	query := `SELECT availability_id, person_id, from_date, to_date
              FROM availability WHERE person_id = $1 ORDER BY from_date`

	rows, err := engine(ctx, r.db).Query(ctx, query, personID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	defer rows.Close()

	var windows []domain.Availability
	for rows.Next() {
		var w domain.Availability
		if err := rows.Scan(&w.AvailabilityID, &w.PersonID, &w.FromDate, &w.ToDate); err != nil {
			return nil, apperror.Persistence(err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence(err)
	}
	return windows, nil
}
