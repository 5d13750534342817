package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/credential"
)

type authUsecase struct {
	accountRepo domain.AccountRepository
	tx          domain.TxManager
	validate    *validator.Validate
}

func NewAuthUsecase(accountRepo domain.AccountRepository, tx domain.TxManager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		tx:          tx,
		validate:    validate,
	}
}

// Register creates a new applicant account inside one transaction.
// The FindByUsername pre-check narrows the duplicate window for a friendly
// message; the storage unique constraint is what actually closes the race,
// and its Conflict surfaces here unchanged when two registrations collide.
func (u *authUsecase) Register(ctx context.Context, reg *domain.Registration) (bool, error) {
	if err := u.validate.Struct(reg); err != nil {
		return false, apperror.Validation(err.Error())
	}

	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := u.accountRepo.FindByUsername(ctx, reg.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.Conflict("that username already exists")
		}

		hash, err := credential.Hash(reg.Password)
		if err != nil {
			return err
		}

		_, err = u.accountRepo.Create(ctx, reg, hash, domain.RoleApplicant)
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Login verifies the credentials against the stored hash. The lookup runs in
// a transaction so a half-committed registration is never observed. An absent
// account and a wrong password fail with the same kind, message and status,
// so a caller cannot probe which part was wrong.
func (u *authUsecase) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	var account *domain.Account
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := u.accountRepo.FindByUsername(ctx, creds.Username)
		if err != nil {
			return err
		}
		if found == nil {
			return apperror.CredentialMismatch("wrong username or password")
		}

		if err := credential.Verify(creds.Password, found.PasswordHash); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Kind == apperror.KindCredentialMismatch {
				return apperror.CredentialMismatch("wrong username or password")
			}
			return err
		}

		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// CurrentAccount re-validates a token subject against the store. Used by the
// delivery layer to confirm an authenticated caller still exists.
func (u *authUsecase) CurrentAccount(ctx context.Context, username string) (*domain.Account, error) {
	account, err := u.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NotFound("that user does not exist")
	}
	return account, nil
}
