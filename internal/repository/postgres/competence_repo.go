package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

type competenceProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompetenceProfileRepository(db *pgxpool.Pool) domain.CompetenceProfileRepository {
	return &competenceProfileRepo{db: db}
}

// CreateAll bulk-inserts all competence claims through the ctx-bound
// transaction. Years of experience is bound as its exact decimal string so
// the DECIMAL(4,2) column never sees a binary-rounded value.
func (r *competenceProfileRepo) CreateAll(ctx context.Context, profiles []domain.CompetenceProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range profiles {
		batch.Queue(
			`INSERT INTO competence_profile (person_id, competence_id, years_of_experience) VALUES ($1, $2, $3)`,
			p.PersonID, p.CompetenceID, p.YearsOfExperience.String(),
		)
	}

	results := engine(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	for range profiles {
		if _, err := results.Exec(); err != nil {
			return apperror.Persistence(err)
		}
	}
	return nil
}

func (r *competenceProfileRepo) ListByPersonID(ctx context.Context, personID int) ([]domain.CompetenceProfile, error) {
	query := `SELECT competence_profile_id, person_id, competence_id, years_of_experience
              FROM competence_profile WHERE person_id = $1 ORDER BY competence_profile_id`

	rows, err := engine(ctx, r.db).Query(ctx, query, personID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	defer rows.Close()

	var profiles []domain.CompetenceProfile
	for rows.Next() {
		var p domain.CompetenceProfile
		if err := rows.Scan(&p.CompetenceProfileID, &p.PersonID, &p.CompetenceID, &p.YearsOfExperience); err != nil {
			return nil, apperror.Persistence(err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence(err)
	}
	return profiles, nil
}

type competenceRepo struct {
	db *pgxpool.Pool
}

func NewCompetenceRepository(db *pgxpool.Pool) domain.CompetenceRepository {
	return &competenceRepo{db: db}
}

func (r *competenceRepo) ListAll(ctx context.Context) ([]domain.Competence, error) {
	query := `SELECT competence_id, name FROM competence ORDER BY competence_id`

	rows, err := engine(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	defer rows.Close()

	var competencies []domain.Competence
	for rows.Next() {
		var c domain.Competence
		if err := rows.Scan(&c.CompetenceID, &c.Name); err != nil {
			return nil, apperror.Persistence(err)
		}
		competencies = append(competencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence(err)
	}
	return competencies, nil
}
