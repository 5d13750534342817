package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

// Create inserts one account row. The unique constraint on username is the
// authoritative duplicate defense; the service-level pre-check only narrows
// the window, so the constraint violation path is always handled here.
func (r *accountRepo) Create(ctx context.Context, reg *domain.Registration, passwordHash string, roleID int) (*domain.Account, error) {
	query := `INSERT INTO account (first_name, last_name, email, personal_id_number, username, password_hash, role_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING person_id`

	account := &domain.Account{
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		Email:            reg.Email,
		PersonalIDNumber: reg.PersonalIDNumber,
		Username:         reg.Username,
		PasswordHash:     passwordHash,
		RoleID:           roleID,
	}

	err := engine(ctx, r.db).QueryRow(ctx, query,
		reg.FirstName,
		reg.LastName,
		reg.Email,
		reg.PersonalIDNumber,
		reg.Username,
		passwordHash,
		roleID,
	).Scan(&account.PersonID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("that username already exists")
		}
		return nil, apperror.Persistence(err)
	}
	return account, nil
}

func (r *accountRepo) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT person_id, first_name, last_name, email, personal_id_number, username, password_hash, role_id
              FROM account WHERE username = $1`
	return r.findOne(ctx, query, username)
}

func (r *accountRepo) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `SELECT person_id, first_name, last_name, email, personal_id_number, username, password_hash, role_id
              FROM account WHERE person_id = $1`
	return r.findOne(ctx, query, id)
}

// findOne returns (nil, nil) when no row matches; absence is not an error.
func (r *accountRepo) findOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	err := engine(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&account.PersonID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PersonalIDNumber,
		&account.Username,
		&account.PasswordHash,
		&account.RoleID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return &account, nil
}

func (r *accountRepo) ListByRole(ctx context.Context, roleID int) ([]domain.Account, error) {
	query := `SELECT person_id, first_name, last_name, email, personal_id_number, username, password_hash, role_id
              FROM account WHERE role_id = $1 ORDER BY person_id`

	rows, err := engine(ctx, r.db).Query(ctx, query, roleID)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.PersonID,
			&account.FirstName,
			&account.LastName,
			&account.Email,
			&account.PersonalIDNumber,
			&account.Username,
			&account.PasswordHash,
			&account.RoleID,
		); err != nil {
			return nil, apperror.Persistence(err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence(err)
	}
	return accounts, nil
}
