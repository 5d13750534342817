package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/internal/domain"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/token"
	"recruitment-portal-backend/pkg/validation"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *token.Service
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *token.Service, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
		config: cfg,
	}

	user := public.Group("/user")
	{
		user.POST("/register", handler.Register)
		user.POST("/login", handler.Login)
	}

	protectedUser := protected.Group("/user")
	{
		protectedUser.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	FirstName      string `json:"firstName" binding:"required,valid_name"`
	LastName       string `json:"lastName" binding:"required,valid_name"`
	Email          string `json:"email" binding:"required,email"`
	PersonalNumber string `json:"personalNumber" binding:"required,personal_number"`
	Username       string `json:"username" binding:"required,valid_username"`
	Password       string `json:"password" binding:"required,strong_password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account *domain.Account `json:"account"`
}

// Register creates a new applicant account. Malformed fields are rejected
// here; identity and uniqueness invariants belong to the service.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := validation.FormatValidationErrors(err)
		c.Error(apperror.Validation(messages[0]))
		return
	}

	reg := &domain.Registration{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PersonalIDNumber: req.PersonalNumber,
		Username:         req.Username,
		Password:         req.Password,
	}

	if _, err := h.authUC.Register(c.Request.Context(), reg); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", nil)
}

// Login verifies credentials and hands back a signed token carrying the
// account id and role. The token is also set as an http-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("username and password are required"))
		return
	}

	account, err := h.authUC.Login(c.Request.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	signed, err := h.tokens.Issue(account.PersonID, account.Username, account.RoleID)
	if err != nil {
		c.Error(apperror.Persistence(err))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth_token", signed, int(h.config.TokenTTL().Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, "Login successful", loginResponse{
		Token:   signed,
		Account: account,
	})
}

// Me re-validates the token subject against the account store and returns
// the stored account. A token for a since-removed account answers NotFound,
// never the stale claims.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := ctx.Value(domain.KeyUsername).(string)

	account, err := h.authUC.CurrentAccount(ctx, username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account retrieved", account)
}
