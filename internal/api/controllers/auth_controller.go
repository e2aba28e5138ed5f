package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/models/response_models"
	"giftfinder/internal/repositories"
	"giftfinder/internal/services"
	"giftfinder/pkg/utils"
)

type AuthController struct {
	backendRepo repositories.BackendRepository
	session     services.SessionServiceInterface
	logger      *zap.Logger
}

func NewAuthController(
	backendRepo repositories.BackendRepository,
	session services.SessionServiceInterface,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		backendRepo: backendRepo,
		session:     session,
		logger:      logger,
	}
}

// ShowLogin renders the combined login/register page. ?mode=register opens
// it in register mode.
func (a *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Registering": c.Query("mode") == "register",
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		a.renderLoginError(c, false, req.Email, "Please enter a valid email and password")
		return
	}

	result, err := a.backendRepo.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.renderLoginError(c, false, req.Email, authFailureMessage(err))
		return
	}

	a.establishSession(c, req.Email, result, false)
}

func (a *AuthController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		a.renderLoginError(c, true, req.Email, "Please fill in every field")
		return
	}
	// Mismatch is caught before any network call.
	if req.Password != req.ConfirmPassword {
		a.renderLoginError(c, true, req.Email, "Passwords do not match")
		return
	}

	result, err := a.backendRepo.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.renderLoginError(c, true, req.Email, authFailureMessage(err))
		return
	}

	a.establishSession(c, req.Email, result, true)
}

func (a *AuthController) Logout(c *gin.Context) {
	if err := a.session.Logout(); err != nil {
		a.logger.Warn("logout failed", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/login")
}

// establishSession persists the token/user pair and routes the user to the
// survey or straight to recommendations, matching the login flow: fresh
// registrations and incomplete surveys land on the survey.
func (a *AuthController) establishSession(c *gin.Context, email string, result *response_models.AuthResult, registering bool) {
	user := response_models.SessionUser{
		Email:              email,
		HasCompletedSurvey: result.HasCompletedSurvey,
	}
	if err := a.session.Login(result.Token, user); err != nil {
		a.logger.Error("failed to persist session", zap.Error(err))
		a.renderLoginError(c, registering, email, "An error occurred. Please try again.")
		return
	}

	if registering || !result.HasCompletedSurvey {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/recommendations")
}

func (a *AuthController) renderLoginError(c *gin.Context, registering bool, email, message string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Registering": registering,
		"Email":       email,
		"Error":       message,
	})
}

func authFailureMessage(err error) string {
	var authErr *utils.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	return "An error occurred. Please try again."
}
