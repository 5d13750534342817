package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
)

type CompetenceHandler struct {
	competenceUC domain.CompetenceUsecase
}

func NewCompetenceHandler(public *gin.RouterGroup, competenceUC domain.CompetenceUsecase) {
	handler := &CompetenceHandler{competenceUC: competenceUC}

	public.GET("/competence", handler.ListCompetencies)
}

// ListCompetencies returns the competence catalog the application form is
// built from.
func (h *CompetenceHandler) ListCompetencies(c *gin.Context) {
	competencies, err := h.competenceUC.ListCompetencies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Competencies retrieved", competencies)
}
