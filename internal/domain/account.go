package domain

import "context"

// Role IDs match the rows seeded into the role table.
const (
	RoleRecruiter = 1
	RoleApplicant = 2
)

type Account struct {
	PersonID         int    `json:"person_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	PersonalIDNumber string `json:"personal_id_number"`
	Username         string `json:"username"`
	PasswordHash     string `json:"-"`
	RoleID           int    `json:"role_id"`
}

// Registration carries the data needed to create an account. The delivery
// layer has already rejected malformed strings; the validate tags here are a
// second line of defense for business-critical fields only.
type Registration struct {
	FirstName        string `validate:"required"`
	LastName         string `validate:"required"`
	Email            string `validate:"required,email"`
	PersonalIDNumber string `validate:"required"`
	Username         string `validate:"required"`
	Password         string `validate:"required"`
}

type Credentials struct {
	Username string
	Password string
}

type AccountRepository interface {
	// Create inserts the account and returns it with the store-assigned id.
	// A duplicate username fails with a Conflict kind detected at the storage
	// layer, never only at the pre-check.
	Create(ctx context.Context, reg *Registration, passwordHash string, roleID int) (*Account, error)
	// FindByUsername returns (nil, nil) when no account matches.
	FindByUsername(ctx context.Context, username string) (*Account, error)
	// FindByID returns (nil, nil) when no account matches.
	FindByID(ctx context.Context, id int) (*Account, error)
	ListByRole(ctx context.Context, roleID int) ([]Account, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, reg *Registration) (bool, error)
	Login(ctx context.Context, creds Credentials) (*Account, error)
	CurrentAccount(ctx context.Context, username string) (*Account, error)
}
