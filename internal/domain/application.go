package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Availability is one contiguous span an applicant is available to work.
// Immutable once committed.
type Availability struct {
	AvailabilityID int       `json:"availability_id"`
	PersonID       int       `json:"person_id"`
	FromDate       time.Time `json:"from_date"`
	ToDate         time.Time `json:"to_date"`
}

// CompetenceProfile links an applicant to a catalog competence together with
// their years of experience. Experience is an exact decimal, never a float:
// the column is DECIMAL(4,2) and "2.50" must round-trip unchanged.
type CompetenceProfile struct {
	CompetenceProfileID int             `json:"competence_profile_id"`
	PersonID            int             `json:"person_id"`
	CompetenceID        int             `json:"competence_id"`
	YearsOfExperience   decimal.Decimal `json:"years_of_experience"`
}

// Competence is one row of the competence catalog.
type Competence struct {
	CompetenceID int    `json:"competence_id"`
	Name         string `json:"name"`
}

// SubmissionRequest is the transient unit of work for one application
// submission. The asserted identity comes from the caller's token and is
// re-checked against the account store before anything is persisted.
type SubmissionRequest struct {
	PersonID       int
	RoleID         int
	Availabilities []Availability
	Competencies   []CompetenceProfile
}

// ApplicationSummary is what a recruiter sees when reviewing one submitted
// application.
type ApplicationSummary struct {
	Account        *Account            `json:"account"`
	Availabilities []Availability      `json:"availabilities"`
	Competencies   []CompetenceProfile `json:"competencies"`
}

type AvailabilityRepository interface {
	// CreateAll bulk-inserts inside the caller's transaction. It never
	// commits on its own and performs no partial cleanup; rollback is the
	// caller's responsibility.
	CreateAll(ctx context.Context, windows []Availability) error
	ListByPersonID(ctx context.Context, personID int) ([]Availability, error)
}

type CompetenceProfileRepository interface {
	CreateAll(ctx context.Context, profiles []CompetenceProfile) error
	ListByPersonID(ctx context.Context, personID int) ([]CompetenceProfile, error)
}

type CompetenceRepository interface {
	ListAll(ctx context.Context) ([]Competence, error)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, req *SubmissionRequest) (bool, error)
	ListApplications(ctx context.Context) ([]ApplicationSummary, error)
}

type CompetenceUsecase interface {
	ListCompetencies(ctx context.Context) ([]Competence, error)
}
