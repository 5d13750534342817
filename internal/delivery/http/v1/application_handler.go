package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
)

const dateLayout = "2006-01-02"

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	application := protected.Group("/application")
	{
		application.POST("", handler.Submit)
		application.GET("", handler.ListApplications)
	}
}

type availabilityPayload struct {
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

type competencePayload struct {
	CompetenceID      int    `json:"competenceId" binding:"required"`
	YearsOfExperience string `json:"yearsOfExperience" binding:"required"`
}

type SubmitApplicationRequest struct {
	Availabilities []availabilityPayload `json:"availabilities" binding:"required,min=1,dive"`
	Competencies   []competencePayload   `json:"competencies" binding:"required,min=1,dive"`
}

// Submit packs the body and the token identity into one submission request.
// Dates are plain calendar days; experience is parsed as an exact decimal so
// "2.50" survives unchanged into DECIMAL(4,2).
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	ctx := c.Request.Context()
	personID, _ := ctx.Value(domain.KeyPersonID).(int)
	roleID, _ := ctx.Value(domain.KeyUserRole).(int)

	submission := &domain.SubmissionRequest{
		PersonID: personID,
		RoleID:   roleID,
	}

	for _, entry := range req.Availabilities {
		from, err := time.Parse(dateLayout, entry.FromDate)
		if err != nil {
			c.Error(apperror.Validation("availability dates must have the format YYYY-MM-DD"))
			return
		}
		to, err := time.Parse(dateLayout, entry.ToDate)
		if err != nil {
			c.Error(apperror.Validation("availability dates must have the format YYYY-MM-DD"))
			return
		}
		submission.Availabilities = append(submission.Availabilities, domain.Availability{
			PersonID: personID,
			FromDate: from,
			ToDate:   to,
		})
	}

	for _, entry := range req.Competencies {
		years, err := decimal.NewFromString(entry.YearsOfExperience)
		if err != nil {
			c.Error(apperror.Validation("years of experience must be a decimal number"))
			return
		}
		submission.Competencies = append(submission.Competencies, domain.CompetenceProfile{
			PersonID:          personID,
			CompetenceID:      entry.CompetenceID,
			YearsOfExperience: years,
		})
	}

	if _, err := h.applicationUC.Submit(ctx, submission); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application submission successful", nil)
}

// ListApplications returns all submitted applications for recruiter review.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	summaries, err := h.applicationUC.ListApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", summaries)
}
