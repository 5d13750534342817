package usecase

import (
	"context"

	"recruitment-portal-backend/internal/domain"
)

type competenceUsecase struct {
	competenceRepo domain.CompetenceRepository
}

func NewCompetenceUsecase(competenceRepo domain.CompetenceRepository) domain.CompetenceUsecase {
	return &competenceUsecase{competenceRepo: competenceRepo}
}

func (uc *competenceUsecase) ListCompetencies(ctx context.Context) ([]domain.Competence, error) {
	return uc.competenceRepo.ListAll(ctx)
}
