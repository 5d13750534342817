package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

type applicationUsecase struct {
	accountRepo           domain.AccountRepository
	availabilityRepo      domain.AvailabilityRepository
	competenceProfileRepo domain.CompetenceProfileRepository
	tx                    domain.TxManager
}

func NewApplicationUsecase(
	accountRepo domain.AccountRepository,
	availabilityRepo domain.AvailabilityRepository,
	competenceProfileRepo domain.CompetenceProfileRepository,
	tx domain.TxManager,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		accountRepo:           accountRepo,
		availabilityRepo:      availabilityRepo,
		competenceProfileRepo: competenceProfileRepo,
		tx:                    tx,
	}
}

// Submit persists one job application as a single unit of work. The caller's
// asserted identity is never trusted alone: the account is re-fetched and its
// stored role checked before any child row is written. Every failure rolls
// back the whole submission; there is no partial commit and no compensation
// path after commit.
func (uc *applicationUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) (bool, error) {
	if req.RoleID != domain.RoleApplicant {
		return false, apperror.Authorization("only applicants may submit job applications")
	}

	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		account, err := uc.accountRepo.FindByID(ctx, req.PersonID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperror.NotFound("that user does not exist")
		}
		if account.RoleID != req.RoleID {
			return apperror.Conflict("the stored role does not match the asserted role")
		}

		// Child rows always belong to the re-checked account, regardless of
		// what person ids the request body carried.
		windows := make([]domain.Availability, len(req.Availabilities))
		for i, w := range req.Availabilities {
			w.PersonID = account.PersonID
			windows[i] = w
		}
		profiles := make([]domain.CompetenceProfile, len(req.Competencies))
		for i, p := range req.Competencies {
			p.PersonID = account.PersonID
			profiles[i] = p
		}

		if err := uc.availabilityRepo.CreateAll(ctx, windows); err != nil {
			return err
		}
		return uc.competenceProfileRepo.CreateAll(ctx, profiles)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListApplications returns every applicant's submitted application for
// recruiter review. The caller's role comes from the authenticated context.
func (uc *applicationUsecase) ListApplications(ctx context.Context) ([]domain.ApplicationSummary, error) {
	role, ok := ctx.Value(domain.KeyUserRole).(int)
	if !ok || role != domain.RoleRecruiter {
		return nil, apperror.Authorization("only recruiters may review applications")
	}

	applicants, err := uc.accountRepo.ListByRole(ctx, domain.RoleApplicant)
	if err != nil {
		return nil, err
	}

	var summaries []domain.ApplicationSummary
	for i := range applicants {
		account := applicants[i]
		windows, err := uc.availabilityRepo.ListByPersonID(ctx, account.PersonID)
		if err != nil {
			return nil, err
		}
		profiles, err := uc.competenceProfileRepo.ListByPersonID(ctx, account.PersonID)
		if err != nil {
			return nil, err
		}
		// Applicants who have not submitted anything yet are not listed.
		if len(windows) == 0 && len(profiles) == 0 {
			continue
		}
		summaries = append(summaries, domain.ApplicationSummary{
			Account:        &account,
			Availabilities: windows,
			Competencies:   profiles,
		})
	}
	return summaries, nil
}
